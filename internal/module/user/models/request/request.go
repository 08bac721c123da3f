package request

type Register struct {
	Email          string            `json:"email" validate:"required,email"`
	Password       string            `json:"password" validate:"required,min=8"`
	Role           string            `json:"role" validate:"omitempty,oneof=user influencer"`
	Phone          string            `json:"phone" validate:"omitempty,e164"`
	Name           string            `json:"name" validate:"omitempty,max=100"`
	ProfilePicture string            `json:"profile_picture" validate:"omitempty,url"`
	ProfilePhotos  []string          `json:"profile_photos" validate:"omitempty,dive,url"`
	Bio            string            `json:"bio" validate:"omitempty,max=1000"`
	SocialLinks    map[string]string `json:"social_links" validate:"omitempty"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SendSmsCode struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type VerifySmsCode struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type UpdateProfile struct {
	Name           string            `json:"name" validate:"omitempty,max=100"`
	Phone          string            `json:"phone" validate:"omitempty,e164"`
	ProfilePicture string            `json:"profile_picture" validate:"omitempty,url"`
	ProfilePhotos  []string          `json:"profile_photos" validate:"omitempty,dive,url"`
	Bio            string            `json:"bio" validate:"omitempty,max=1000"`
	SocialLinks    map[string]string `json:"social_links" validate:"omitempty"`
}

type SubmitVerification struct {
	Documents []string `json:"documents" validate:"required,min=1,dive,url"`
}
