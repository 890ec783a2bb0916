package model

type Car struct {
	Brand  string   `json:"brand"`
	Models []string `json:"models"`
}

// DefaultCars - каталог, с которого начинает мастерская
func DefaultCars() []Car {
	return []Car{
		{Brand: "Toyota", Models: []string{"Camry", "Corolla", "RAV4", "Land Cruiser"}},
		{Brand: "BMW", Models: []string{"X5", "3 Series", "5 Series", "X3"}},
		{Brand: "Mercedes-Benz", Models: []string{"E-Class", "C-Class", "GLE", "S-Class"}},
		{Brand: "Audi", Models: []string{"A4", "A6", "Q5", "Q7"}},
		{Brand: "Volkswagen", Models: []string{"Polo", "Passat", "Tiguan", "Golf"}},
	}
}
