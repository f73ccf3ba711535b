package models

import "time"

// Client is a pet owner registered with the clinic.
type Client struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Pets      []Pet     `bson:"pets" json:"pets"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Pet belongs to a client document.
type Pet struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Species string `bson:"species" json:"species"`
	Breed   string `bson:"breed,omitempty" json:"breed,omitempty"`
}

// DispensedLine records one medicine handed out during a consultation.
// Quantity is expressed in the chosen denomination of the referenced item.
type DispensedLine struct {
	ItemID       string       `bson:"item_id" json:"item_id" binding:"required"`
	ItemName     string       `bson:"item_name" json:"item_name"`
	Quantity     float64      `bson:"quantity" json:"quantity" binding:"required"`
	Denomination Denomination `bson:"denomination" json:"denomination" binding:"required"`
}

// Consultation is a medical visit; saving one deducts every dispensed line
// from stock, and the document is only recorded if all deductions succeed.
type Consultation struct {
	ID        string          `bson:"_id" json:"id"`
	ClientID  string          `bson:"client_id" json:"client_id"`
	PetID     string          `bson:"pet_id" json:"pet_id"`
	Diagnosis string          `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Notes     string          `bson:"notes,omitempty" json:"notes,omitempty"`
	Dispensed []DispensedLine `bson:"dispensed" json:"dispensed"`
	Fee       float64         `bson:"fee" json:"fee"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}
