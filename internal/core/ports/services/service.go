package services

// ServiceContainer holds instances of all the application services
// and is handed to the HTTP layer at startup.
type ServiceContainer struct {
	ReceiptDiscount ReceiptDiscountSvcFacade
}
