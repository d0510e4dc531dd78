package simulation

// IDService issues sequential identifiers for simulation elements. One
// instance per simulation; passed to constructors instead of living in
// package state.
type IDService struct {
	lastID int
}

func NewIDService() *IDService {
	return &IDService{}
}

func (service *IDService) NextID() int {
	service.lastID++
	return service.lastID
}
