package board

import "fmt"

// PushResult is the outcome of an in-line move. Every value except PushOK is
// returned as an error by DoMove.
type PushResult int

const (
	IllegalDirection  PushResult = -1 // not a neighbour, or not the mover's marble
	PushOK            PushResult = 0
	AttackerTooLong   PushResult = 1 // more than three marbles in the line
	AttackerTooShort  PushResult = 2 // defenders are at least as many as attackers
	DefenderHasBackup PushResult = 3 // own marble behind the defending line
	PushSuicide       PushResult = 4 // own marble would leave the board
)

func (r PushResult) Code() int {
	return int(r)
}

func (r PushResult) Error() string {
	switch r {
	case IllegalDirection:
		return "illegal push direction"
	case PushOK:
		return "push ok"
	case AttackerTooLong:
		return "attacking line too long"
	case AttackerTooShort:
		return "attacking line not longer than defenders"
	case DefenderHasBackup:
		return "defending line has backup"
	case PushSuicide:
		return "push out of board"
	}
	return fmt.Sprintf("push result %d", int(r))
}

// BroadsideResult is the outcome of a sideways move of two or three marbles.
type BroadsideResult int

const (
	BroadsideOK BroadsideResult = 0
	Blocked     BroadsideResult = 1
)

func (r BroadsideResult) Code() int {
	return int(r)
}

func (r BroadsideResult) Error() string {
	if r == BroadsideOK {
		return "broadside ok"
	}
	return "broadside move blocked"
}

// ReverseRejection explains why a reverse move candidate was not accepted.
type ReverseRejection int

const (
	ErrTooManyPushedOff ReverseRejection = 11
	ErrBroadsidePush    ReverseRejection = 12
	ErrPullsOpponent    ReverseRejection = 13
	ErrNoPieceOff       ReverseRejection = 14
)

func (r ReverseRejection) Code() int {
	return int(r)
}

func (r ReverseRejection) Error() string {
	switch r {
	case ErrTooManyPushedOff:
		return "more than one opponent pushed off"
	case ErrBroadsidePush:
		return "broadside move cannot push"
	case ErrPullsOpponent:
		return "move would pull an opponent"
	case ErrNoPieceOff:
		return "no opponent marble off board to restore"
	}
	return fmt.Sprintf("reverse rejection %d", int(r))
}
