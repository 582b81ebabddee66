package artist

type ProfileRequest struct {
	Nickname     string `json:"nickname"`
	Name         string `json:"name"`
	ProfileImg   string `json:"profile_img"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	Introduction string `json:"introduction"`
}
