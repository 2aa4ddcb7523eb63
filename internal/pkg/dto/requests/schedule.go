package requests

type GenerateSchedules struct {
	Courses []string `json:"courses" validate:"required,min=1,max=8,dive,required"`
}
