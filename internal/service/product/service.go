package product

import (
	"context"
	"fmt"
	"strings"

	"musicmerchant/internal/domain"
	productrepo "musicmerchant/internal/repository/product"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var fieldCheck = validator.New()

type Service struct {
	repo   productrepo.Repository
	newID  func() string
	logger *zap.Logger
}

func New(repo productrepo.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, newID: uuid.NewString, logger: logger.Named("product_service")}
}

// Input is the writable field set of a product. Price accepts a JSON number
// or a numeric string.
type Input struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Price       *decimal.Decimal  `json:"price" binding:"required"`
	Category    domain.Category   `json:"category" binding:"required,oneof=sheet-music instruments accessories"`
	Type        string            `json:"type"`
	Composer    string            `json:"composer"`
	Difficulty  domain.Difficulty `json:"difficulty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Genre       string            `json:"genre"`
	Brand       string            `json:"brand"`
	Model       string            `json:"model"`
	Image       string            `json:"image" binding:"omitempty,url"`
}

func (in Input) product(id string) domain.Product {
	p := domain.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		Composer:    in.Composer,
		Difficulty:  in.Difficulty,
		Genre:       in.Genre,
		Brand:       in.Brand,
		Model:       in.Model,
		Image:       in.Image,
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p.Normalize()
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new product under a freshly generated id.
func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if in.Price == nil {
		return nil, fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	p := in.product(s.newID())
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

// Replace overwrites every field of the product with the given id. An
// unknown id yields domain.ErrNotFound and changes nothing.
func (s *Service) Replace(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	if in.Price == nil {
		return nil, fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	p := in.product(id)
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Replace(ctx, p)
}

// Upsert inserts or overwrites p by id, generating an id when p has none.
func (s *Service) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = s.newID()
	}
	p = p.Normalize()
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, p)
}

// Delete removes the product; deleting an unknown id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	case !p.Category.Valid():
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, p.Category)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	case p.Price.GreaterThan(domain.MaxPrice):
		return fmt.Errorf("%w: price must not exceed %s", domain.ErrValidation, domain.MaxPrice)
	case !p.Price.Equal(p.Price.Round(2)):
		return fmt.Errorf("%w: price must have at most two decimal places", domain.ErrValidation)
	case p.Difficulty != "" && !p.Difficulty.Valid():
		return fmt.Errorf("%w: unknown difficulty %q", domain.ErrValidation, p.Difficulty)
	case p.Image != "" && fieldCheck.Var(p.Image, "url") != nil:
		return fmt.Errorf("%w: image %q is not a URL", domain.ErrValidation, p.Image)
	}
	return nil
}
