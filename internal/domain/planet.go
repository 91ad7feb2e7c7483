package domain

// Planet Model
type Planet struct {
	ID      uint   `gorm:"primaryKey" json:"id"`                     // Primary key
	Nombre  string `gorm:"type:varchar(120);not null" json:"nombre"` // Name
	Clima   string `gorm:"type:varchar(120);not null" json:"clima"`  // Climate
	Terreno string `gorm:"type:varchar(120);not null" json:"terreno"` // Terrain
	// Favorites referencing this planet; deleting it deletes them too
	Favoritos []Favorite `gorm:"foreignKey:PlanetaID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName overrides GORM's pluralized default
func (Planet) TableName() string { return "planeta" }

// Serialize converts the planet to a plain output record
func (p *Planet) Serialize() map[string]any {
	return map[string]any{
		"id":      p.ID,      // Planet ID
		"nombre":  p.Nombre,  // Name
		"clima":   p.Clima,   // Climate
		"terreno": p.Terreno, // Terrain
	}
}
