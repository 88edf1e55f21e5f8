package models

// Service describes a bookable offering. BufferTime is padding after the
// service duration before the next booking may start.
type Service struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Duration   int    `bson:"duration" json:"duration"`                       // minutes, must be > 0
	BufferTime int    `bson:"bufferTime,omitempty" json:"bufferTime,omitempty"` // minutes, >= 0
}
