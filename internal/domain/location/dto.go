package location

type CityRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}
