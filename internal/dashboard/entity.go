package dashboard

import (
	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/filter"
	"github.com/avstrong/hotelsearch/internal/ordering"
)

type ViewMode string

const (
	ViewGrid  ViewMode = "grid"
	ViewTable ViewMode = "table"
)

func (m ViewMode) Valid() bool {
	return m == ViewGrid || m == ViewTable
}

// View is everything the presentation layer renders for one session.
type View struct {
	PageItems         []catalog.Hotel  `json:"pageItems"`
	TotalCount        int              `json:"totalCount"`
	TotalPages        int              `json:"totalPages"`
	EffectivePage     int              `json:"effectivePage"`
	ActiveFilterCount int              `json:"activeFilterCount"`
	DateError         filter.DateError `json:"dateError"`
	Loading           bool             `json:"loading"`
	ViewMode          ViewMode         `json:"viewMode"`
	Sort              ordering.Spec    `json:"sort"`
	Filters           filter.Criteria  `json:"filters"`
	// Query is the address bar query string the client mirrors, without "?".
	Query string `json:"query"`
}

type SessionInfo struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
	Query     string `json:"query"`
	View      View   `json:"view"`
}

type SortInput struct {
	Primary   string `json:"primary"`
	Direction string `json:"direction"`
	Secondary string `json:"secondary"`
}

type CatalogInfo struct {
	HotelCount int                `json:"hotelCount"`
	PriceRange catalog.PriceRange `json:"priceRange"`
	Amenities  []catalog.Amenity  `json:"amenities"`
	PageSize   int                `json:"pageSize"`
}

// Export is a rendered CSV download.
type Export struct {
	Filename string
	Content  []byte
}
