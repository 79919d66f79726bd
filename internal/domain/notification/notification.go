package notification

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Origin names the collection a notification is about. Empty for global messages.
type Origin string

const (
	OriginNone     Origin = ""
	OriginCart     Origin = "cart"
	OriginWishlist Origin = "wishlist"
)

type Notification struct {
	Message  string
	Severity Severity
	Origin   Origin
	Visible  bool
}

func New(message string, severity Severity, origin Origin) Notification {
	return Notification{Message: message, Severity: severity, Origin: origin, Visible: true}
}

func AddedToCart(name string) Notification {
	return New(name+" added to cart", SeveritySuccess, OriginCart)
}

func QuantityUpdated(name string) Notification {
	return New(name+" quantity updated in cart", SeveritySuccess, OriginCart)
}

func RemovedFromCart(name string) Notification {
	return New(name+" removed from cart", SeverityInfo, OriginCart)
}

func CartCleared() Notification {
	return New("Cart cleared", SeverityInfo, OriginCart)
}

func AddedToWishlist(name string) Notification {
	return New(name+" added to wishlist", SeveritySuccess, OriginWishlist)
}

func RemovedFromWishlist(name string) Notification {
	return New(name+" removed from wishlist", SeverityInfo, OriginWishlist)
}

// Dismissed returns a copy that is no longer shown.
func (n Notification) Dismissed() Notification {
	n.Visible = false
	return n
}
