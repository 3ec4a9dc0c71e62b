package engine

import (
	"fmt"

	"coffee-order/models"

	"github.com/shopspring/decimal"
)

// Command is a buyer action dispatched to a Session.
type Command interface {
	command()
}

type Adjust struct {
	IngredientID int
	Delta        decimal.Decimal
}

type SelectSize struct {
	SizeID int
}

type Confirm struct {
	Quantity int
}

func (Adjust) command()     {}
func (SelectSize) command() {}
func (Confirm) command()    {}

// Dispatch applies cmd to the session. Only Confirm yields a CartLine.
func (s *Session) Dispatch(cmd Command) (*models.CartLine, error) {
	if s.frozen {
		return nil, ErrSessionFrozen
	}

	switch c := cmd.(type) {
	case Adjust:
		s.Adjust(c.IngredientID, c.Delta)
		return nil, nil
	case SelectSize:
		return nil, s.SelectSize(c.SizeID)
	case Confirm:
		line, err := s.Confirm(c.Quantity)
		if err != nil {
			return nil, err
		}
		return &line, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}
