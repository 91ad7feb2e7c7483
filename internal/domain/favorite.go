package domain

// TargetKind identifies which side of the favorite association is populated
type TargetKind string

// Supported favorite target kinds
const (
	TargetCharacter TargetKind = "character" // Favorite points at a character
	TargetPlanet    TargetKind = "planet"    // Favorite points at a planet
)

// FavoriteTarget is the tagged variant form of the favorite's target:
// exactly one kind, exactly one id. Building a Favorite through it makes
// the "both set" and "neither set" column states unreachable from the API.
type FavoriteTarget struct {
	Kind TargetKind // Which entity kind is referenced
	ID   uint       // The referenced entity's id
}

// Favorite Model
type Favorite struct {
	ID          uint  `gorm:"primaryKey" json:"id"`          // Primary key
	UsuarioID   uint  `gorm:"not null;index" json:"usuario_id"` // Owning user (required)
	PersonajeID *uint `json:"personaje_id,omitempty"`        // Foreign key to Character, nullable
	PlanetaID   *uint `json:"planeta_id,omitempty"`          // Foreign key to Planet, nullable

	Usuario   *User      `json:"-"` // Owning user
	Personaje *Character `json:"-"` // Referenced character, when PersonajeID is set
	Planeta   *Planet    `json:"-"` // Referenced planet, when PlanetaID is set
}

// TableName overrides GORM's pluralized default
func (Favorite) TableName() string { return "favorito" }

// NewFavorite builds a favorite for a user with exactly one foreign key
// populated, chosen by the target's kind.
func NewFavorite(userID uint, target FavoriteTarget) Favorite {
	fav := Favorite{UsuarioID: userID} // Owning user is always required
	switch target.Kind {
	case TargetCharacter:
		fav.PersonajeID = &target.ID // Populate the character side only
	case TargetPlanet:
		fav.PlanetaID = &target.ID // Populate the planet side only
	}
	return fav
}

// Target reports which entity the favorite references. ok is false when
// neither foreign key is set, a state the create path never produces but
// serialization still has to survive.
func (f *Favorite) Target() (FavoriteTarget, bool) {
	if f.PersonajeID != nil {
		return FavoriteTarget{Kind: TargetCharacter, ID: *f.PersonajeID}, true
	}
	if f.PlanetaID != nil {
		return FavoriteTarget{Kind: TargetPlanet, ID: *f.PlanetaID}, true
	}
	return FavoriteTarget{}, false // Neither side populated
}

// Serialize converts the favorite to a plain output record, branching on
// which side of the association is populated. The target's name is taken
// from the loaded relation; a favorite with neither side set serializes to
// the bare id.
func (f *Favorite) Serialize() map[string]any {
	data := map[string]any{"id": f.ID} // Bare id is always present
	if f.Personaje != nil {
		data["type"] = string(TargetCharacter) // Character side populated
		data["nombre"] = f.Personaje.Nombre    // Character name
	} else if f.Planeta != nil {
		data["type"] = string(TargetPlanet) // Planet side populated
		data["nombre"] = f.Planeta.Nombre   // Planet name
	}
	return data
}

// SerializeResolved converts the favorite to the listing form, carrying the
// target's full descriptive record instead of just its name.
func (f *Favorite) SerializeResolved() map[string]any {
	item := map[string]any{"id": f.ID} // Bare id is always present
	if f.Personaje != nil {
		item["type"] = string(TargetCharacter) // Character side populated
		item["data"] = f.Personaje.Serialize() // Full character record
	} else if f.Planeta != nil {
		item["type"] = string(TargetPlanet) // Planet side populated
		item["data"] = f.Planeta.Serialize() // Full planet record
	}
	return item
}
