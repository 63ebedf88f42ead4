package component

// PlayerHealthBar sizes the row of heart icons shown in the HUD.
type PlayerHealthBar struct {
	MaxHearts int
}

var PlayerHealthBarComponent = NewComponent[PlayerHealthBar]()

// PlayerHealthHeart is one heart icon; Slot counts from zero on the left.
type PlayerHealthHeart struct {
	Slot int
}

var PlayerHealthHeartComponent = NewComponent[PlayerHealthHeart]()
