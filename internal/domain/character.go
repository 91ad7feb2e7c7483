package domain

// Character Model
type Character struct {
	ID         uint   `gorm:"primaryKey" json:"id"`                      // Primary key
	Nombre     string `gorm:"type:varchar(120);not null" json:"nombre"`  // Name
	Genero     string `gorm:"type:varchar(120);not null" json:"genero"`  // Gender
	Nacimiento string `gorm:"type:varchar(120);not null" json:"nacimiento"` // Birth date
	// Favorites referencing this character; deleting it deletes them too
	Favoritos []Favorite `gorm:"foreignKey:PersonajeID;constraint:OnDelete:CASCADE;" json:"-"`
}

// TableName overrides GORM's pluralized default
func (Character) TableName() string { return "personaje" }

// Serialize converts the character to a plain output record
func (p *Character) Serialize() map[string]any {
	return map[string]any{
		"id":         p.ID,         // Character ID
		"nombre":     p.Nombre,     // Name
		"genero":     p.Genero,     // Gender
		"nacimiento": p.Nacimiento, // Birth date
	}
}
