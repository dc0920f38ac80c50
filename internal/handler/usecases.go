package handler

import (
	"time"

	"retailpos/internal/usecase"
)

// Usecases is what the commands run against. The app fills it once the store
// is open, after global flags are parsed, so handlers keep a pointer to it.
type Usecases struct {
	Products *usecase.ProductUsecase
	Checkout *usecase.CheckoutUsecase
	Reports  *usecase.ReportUsecase
	Imports  *usecase.ImportUsecase

	// Location is the time zone dates are typed and printed in.
	Location *time.Location
}

func (u *Usecases) location() *time.Location {
	if u.Location == nil {
		return time.Local
	}
	return u.Location
}
