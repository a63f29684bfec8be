package patient

import (
	"context"
	"time"
)

func ptr(s string) *string { return &s }

func birth(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// demoPatients is the demo registry loaded by the seed command.
var demoPatients = []Patient{
	{RUT: "12.345.678-9", FirstName: "María", LastName: "González", BirthDate: birth(1958, time.March, 14), Gender: "femenino", Phone: ptr("+56 9 8765 4321"), Address: ptr("Av. Libertad 1024, Viña del Mar")},
	{RUT: "9.876.543-2", FirstName: "José", LastName: "Muñoz", BirthDate: birth(1949, time.July, 2), Gender: "masculino", Phone: ptr("+56 9 1234 5678")},
	{RUT: "15.222.333-4", FirstName: "Carmen", LastName: "Rojas", BirthDate: birth(1972, time.November, 23), Gender: "femenino", Address: ptr("Calle Prat 77, Valparaíso")},
	{RUT: "7.111.222-K", FirstName: "Luis", LastName: "Díaz", BirthDate: birth(1941, time.January, 30), Gender: "masculino"},
	{RUT: "18.444.555-6", FirstName: "Valentina", LastName: "Pérez", BirthDate: birth(1995, time.May, 9), Gender: "femenino", Phone: ptr("+56 9 5555 0101")},
	{RUT: "10.999.888-7", FirstName: "Pedro", LastName: "Soto", BirthDate: birth(1963, time.September, 17), Gender: "masculino", Address: ptr("Pasaje Los Aromos 12, Quilpué")},
	{RUT: "13.666.777-8", FirstName: "Rosa", LastName: "Contreras", BirthDate: birth(1955, time.April, 5), Gender: "femenino"},
	{RUT: "16.321.654-0", FirstName: "Jorge", LastName: "Valenzuela", BirthDate: birth(1980, time.December, 12), Gender: "masculino", Phone: ptr("+56 9 2222 3344")},
}

// Seed loads the demo patients, skipping RUTs already present so reseeding
// is safe.
func Seed(ctx context.Context, repo Repository) (int, error) {
	created := 0
	for _, p := range demoPatients {
		existing, err := repo.GetByRUT(ctx, p.RUT)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		p := p
		if err := repo.Create(ctx, &p); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
