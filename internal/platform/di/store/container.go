// internal/platform/di/store/container.go
package store

import (
	"context"
	"errors"
	"log"

	catalogQuery "greenhaven/internal/application/query/catalog"
	usecase "greenhaven/internal/application/usecase"

	outfs "greenhaven/internal/adapters/out/firestore"
	mailout "greenhaven/internal/adapters/out/mail"

	cartdom "greenhaven/internal/domain/cart"
	orderdom "greenhaven/internal/domain/order"

	shared "greenhaven/internal/platform/di/shared"
)

// Container is the buyer-facing DI container.
// Pure DI: build deps only. No routing branching.
type Container struct {
	Infra *shared.Infra

	// Usecases
	CartUC     *usecase.CartUsecase
	UserUC     *usecase.UserUsecase
	InquiryUC  *usecase.InquiryUsecase
	ProductUC  *usecase.ProductUsecase
	CategoryUC *usecase.CategoryUsecase

	// Queries
	CatalogQ *catalogQuery.CatalogQuery

	// Repos exposed to handlers directly (read-only surfaces)
	OrderRepo orderdom.Repository
	CartRepo  cartdom.Repository
}

// NewContainer wires the buyer-facing graph on top of shared infra.
func NewContainer(ctx context.Context, inf *shared.Infra) (*Container, error) {
	if inf == nil {
		return nil, errors.New("store.container: infra is nil")
	}
	if inf.Firestore == nil {
		return nil, errors.New("store.container: firestore client is nil")
	}

	clock := usecase.SystemClock()

	productRepo := outfs.NewProductRepositoryFS(inf.Firestore)
	categoryRepo := outfs.NewCategoryRepositoryFS(inf.Firestore)
	cartRepo := outfs.NewCartRepositoryFS(inf.Firestore)
	userRepo := outfs.NewUserRepositoryFS(inf.Firestore)
	orderRepo := outfs.NewOrderRepositoryFS(inf.Firestore)
	inquiryRepo := outfs.NewInquiryRepositoryFS(inf.Firestore)

	// Mail is optional: nil mailer means inquiries are stored but not relayed.
	mailer := mailout.NewInquiryMailerWithSendGrid(ctx, inf.SecretManager, inf.ProjectID)
	if mailer == nil {
		log.Printf("[store.container] inquiry mail relay disabled")
	}

	cont := &Container{
		Infra: inf,

		CartUC:     usecase.NewCartUsecaseWithClock(cartRepo, productRepo, clock),
		UserUC:     usecase.NewUserUsecase(userRepo, clock),
		InquiryUC:  usecase.NewInquiryUsecase(inquiryRepo, inquiryNotifier(mailer), clock),
		ProductUC:  usecase.NewProductUsecase(productRepo, clock),
		CategoryUC: usecase.NewCategoryUsecase(categoryRepo, clock),

		CatalogQ: catalogQuery.New(productRepo),

		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
	}
	return cont, nil
}

// inquiryNotifier keeps the typed-nil out of the interface value.
func inquiryNotifier(m *mailout.InquiryMailer) usecase.InquiryNotifierPort {
	if m == nil {
		return nil
	}
	return m
}
