package engine

// Sounds plays game effects. Implementations must not block the caller.
type Sounds interface {
	Eat()
	Chop()
	Win()
	Lose()
	Close()
}

// noSounds is used when no Sounds is configured
type noSounds struct{}

func (noSounds) Eat()   {}
func (noSounds) Chop()  {}
func (noSounds) Win()   {}
func (noSounds) Lose()  {}
func (noSounds) Close() {}
