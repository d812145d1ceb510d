package models

// Municipality представляет муниципалитет с координатами для карты.
type Municipality struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Province  string  `json:"province"`
	District  string  `json:"district"`
	Ward      string  `json:"ward"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DummyMunicipality используется для приёма муниципалитета из JSON-запроса.
type DummyMunicipality struct {
	Name      string  `json:"name" validate:"required"`
	Province  string  `json:"province" validate:"required"`
	District  string  `json:"district" validate:"required"`
	Ward      string  `json:"ward" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required"`
	Longitude float64 `json:"longitude" validate:"required"`
}
