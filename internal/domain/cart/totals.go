package cart

import "rent-elegance/internal/domain/product"

type Totals struct {
	Subtotal      product.Money
	Deposit       product.Money
	Total         product.Money
	DistinctItems int
	TotalQuantity int
}

// LineTotal is price times quantity. The price covers one rental period.
func LineTotal(e Entry) product.Money {
	return e.product.Price().Multiply(e.quantity)
}

func Subtotal(entries []Entry) product.Money {
	var sum product.Money
	for _, e := range entries {
		sum = sum.Add(LineTotal(e))
	}
	return sum
}

// DepositTotal charges one deposit per entry regardless of quantity.
func DepositTotal(entries []Entry) product.Money {
	var sum product.Money
	for _, e := range entries {
		sum = sum.Add(e.product.Deposit())
	}
	return sum
}

func TotalQuantity(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n += e.quantity
	}
	return n
}

func Summarize(entries []Entry) Totals {
	sub := Subtotal(entries)
	dep := DepositTotal(entries)
	return Totals{
		Subtotal:      sub,
		Deposit:       dep,
		Total:         sub.Add(dep),
		DistinctItems: len(entries),
		TotalQuantity: TotalQuantity(entries),
	}
}
