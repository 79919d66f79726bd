package product

// Record is the serialized shape shared by the catalog files and device storage.
type Record struct {
	ID             string              `json:"id,omitempty"`
	LegacyID       string              `json:"_id,omitempty"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	Category       string              `json:"category,omitempty"`
	Price          int64               `json:"price"`
	OriginalPrice  int64               `json:"originalPrice,omitempty"`
	Size           string              `json:"size,omitempty"`
	Sizes          []string            `json:"sizes,omitempty"`
	Condition      string              `json:"condition,omitempty"`
	Brand          string              `json:"brand,omitempty"`
	Material       string              `json:"material,omitempty"`
	Color          string              `json:"color,omitempty"`
	Images         []string            `json:"images,omitempty"`
	Owner          *OwnerRecord        `json:"owner,omitempty"`
	Availability   *AvailabilityRecord `json:"availability,omitempty"`
	Tags           []string            `json:"tags,omitempty"`
	RentalDuration int                 `json:"rentalDuration,omitempty"`
	Deposit        int64               `json:"deposit,omitempty"`
}

type OwnerRecord struct {
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	TotalRentals int     `json:"totalRentals"`
	Location     string  `json:"location"`
	JoinDate     string  `json:"joinDate"`
}

type AvailabilityRecord struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsAvailable bool   `json:"isAvailable"`
}

type CategoryRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount,omitempty"`
}
