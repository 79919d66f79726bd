package product

import (
	"errors"
	"strconv"
	"strings"
)

var ErrUnknownCondition = errors.New("unknown condition")

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
)

// ParseCondition treats an empty value as Good.
func ParseCondition(value string) (Condition, error) {
	switch Condition(strings.TrimSpace(value)) {
	case "":
		return ConditionGood, nil
	case ConditionExcellent:
		return ConditionExcellent, nil
	case ConditionGood:
		return ConditionGood, nil
	case ConditionFair:
		return ConditionFair, nil
	default:
		return "", ErrUnknownCondition
	}
}

func (c Condition) String() string {
	return string(c)
}

// Money is a whole amount of rupees.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Multiply(n int) Money {
	return Money{amount: m.amount * int64(n)}
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) String() string {
	sign := ""
	amount := m.amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "₹" + b.String()
}

type Owner struct {
	Name         string
	Rating       float64
	TotalRentals int
	Location     string
	JoinDate     string
}

type Availability struct {
	StartDate   string
	EndDate     string
	IsAvailable bool
}
