package managers

import "errors"

var (
	// ErrSlotOutOfRange indicates a slot index outside [0, MaxSlots).
	ErrSlotOutOfRange = errors.New("managers: slot index out of range")

	// ErrSlotOccupied indicates the slot already holds a manager.
	ErrSlotOccupied = errors.New("managers: slot occupied")

	// ErrSlotVacant indicates a revoke on an empty slot.
	ErrSlotVacant = errors.New("managers: slot vacant")

	// ErrAlreadyAssigned indicates the manager already holds another slot.
	ErrAlreadyAssigned = errors.New("managers: manager already assigned")

	// ErrZeroManager indicates an assignment of the zero address.
	ErrZeroManager = errors.New("managers: manager address must not be zero")
)
