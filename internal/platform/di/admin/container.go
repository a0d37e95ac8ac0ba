// internal/platform/di/admin/container.go
package admin

import (
	"context"
	"errors"

	catalogQuery "greenhaven/internal/application/query/catalog"
	usecase "greenhaven/internal/application/usecase"

	outfs "greenhaven/internal/adapters/out/firestore"
	gcsout "greenhaven/internal/adapters/out/gcs"

	orderdom "greenhaven/internal/domain/order"

	shared "greenhaven/internal/platform/di/shared"
)

// Container is the back-office DI container.
type Container struct {
	Infra *shared.Infra

	ProductUC  *usecase.ProductUsecase
	CategoryUC *usecase.CategoryUsecase
	ExtractUC  *usecase.CategoryExtractUsecase
	InquiryUC  *usecase.InquiryUsecase
	UserUC     *usecase.UserUsecase

	ProductPager catalogQuery.Pager
	OrderRepo    orderdom.Repository
	Images       *gcsout.ProductImageRepositoryGCS
}

// NewContainer wires the back-office graph on top of shared infra.
func NewContainer(ctx context.Context, inf *shared.Infra) (*Container, error) {
	if inf == nil {
		return nil, errors.New("admin.container: infra is nil")
	}
	if inf.Firestore == nil {
		return nil, errors.New("admin.container: firestore client is nil")
	}

	clock := usecase.SystemClock()

	productRepo := outfs.NewProductRepositoryFS(inf.Firestore)
	categoryRepo := outfs.NewCategoryRepositoryFS(inf.Firestore)
	orderRepo := outfs.NewOrderRepositoryFS(inf.Firestore)
	inquiryRepo := outfs.NewInquiryRepositoryFS(inf.Firestore)
	userRepo := outfs.NewUserRepositoryFS(inf.Firestore)

	var images *gcsout.ProductImageRepositoryGCS
	if inf.GCS != nil {
		images = gcsout.NewProductImageRepositoryGCS(inf.GCS, inf.ProductImageBucket)
	}

	return &Container{
		Infra: inf,

		ProductUC:  usecase.NewProductUsecase(productRepo, clock),
		CategoryUC: usecase.NewCategoryUsecase(categoryRepo, clock),
		ExtractUC:  usecase.NewCategoryExtractUsecase(productRepo, categoryRepo, clock),
		InquiryUC:  usecase.NewInquiryUsecase(inquiryRepo, nil, clock),
		UserUC:     usecase.NewUserUsecase(userRepo, clock),

		ProductPager: productRepo,
		OrderRepo:    orderRepo,
		Images:       images,
	}, nil
}
