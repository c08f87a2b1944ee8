package station

// StationError is a custom error type for station store errors
type StationError string

// Error implements the error interface
func (e StationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInstanceNotFound  StationError = "game instance not found"
	ErrNothingToSave     StationError = "nothing to save"
	ErrInvalidGame       StationError = "category, instance name and a positive price are required"
	ErrDuplicateInstance StationError = "a game with this category and instance name already exists"
	ErrInstanceRunning   StationError = "cannot edit a game instance while its timer is running"
	ErrNilConfig         StationError = "config cannot be nil"
	ErrNilGameRepo       StationError = "game repository cannot be nil"
	ErrNilLocalStore     StationError = "local store cannot be nil"
	ErrNilClock          StationError = "clock cannot be nil"
)
