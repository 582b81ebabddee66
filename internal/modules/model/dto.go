package model

type ProfileRequest struct {
	Nickname      string `json:"nickname"`
	Name          string `json:"name"`
	ProfileImg    string `json:"profile_img"`
	Gender        string `json:"gender"`
	Email         string `json:"email"`
	SkinType      string `json:"skin_type"`
	PersonalColor string `json:"personal_color"`
	Introduction  string `json:"introduction"`
}
