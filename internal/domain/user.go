package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                           // Primary key
	Email    string `gorm:"type:varchar(120);unique;not null" json:"email"` // Unique email
	Password string `gorm:"type:varchar(80);not null" json:"-"`             // Bcrypt password hash, never serialized
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`         // Active flag, defaults to true
	// Favorites owned by the user; deleting the user deletes them too
	Favoritos []Favorite `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE;" json:"favoritos"`
}

// TableName overrides GORM's pluralized default
func (User) TableName() string { return "usuario" }

// Serialize converts the user to a plain output record (password excluded)
func (u *User) Serialize() map[string]any {
	favoritos := make([]map[string]any, 0, len(u.Favoritos)) // Serialized favorites
	for i := range u.Favoritos {
		favoritos = append(favoritos, u.Favoritos[i].Serialize()) // Serialize each favorite
	}
	return map[string]any{
		"id":        u.ID,       // User ID
		"email":     u.Email,    // Email
		"is_active": u.IsActive, // Active flag
		"favoritos": favoritos,  // Owned favorites
	}
}
