package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/domain/repository"
	"github.com/jhoicas/menuqr-api/internal/domain/slug"
	"github.com/jhoicas/menuqr-api/pkg/password"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

// LogoFolder carpeta del hosting para logos de negocios.
const LogoFolder = "logos"

// tamaño de página al recorrer todos los negocios (export)
const exportPageSize = 200

// BusinessDeps dependencias del caso de uso de negocios.
type BusinessDeps struct {
	Businesses    repository.BusinessRepository
	Categories    repository.BusinessCategoryRepository
	Tx            CatalogTxRunner
	Uploader      qr.Uploader
	QR            QRIssuer
	Card          QRCardGenerator
	Exporter      BusinessExporter
	Validator     *validation.Validator
	UploadTimeout time.Duration
	Log           zerolog.Logger
}

// BusinessUseCase alta, edición y administración de negocios (tenants).
type BusinessUseCase struct {
	BusinessDeps
}

// NewBusinessUseCase construye el caso de uso.
func NewBusinessUseCase(deps BusinessDeps) *BusinessUseCase {
	if deps.UploadTimeout <= 0 {
		deps.UploadTimeout = qr.DefaultUploadTimeout
	}
	return &BusinessUseCase{BusinessDeps: deps}
}

// CreateBusinessInput alta de negocio: campos tipados, logo obligatorio y origen público ya resuelto.
type CreateBusinessInput struct {
	Request dto.CreateBusinessRequest
	Logo    *dto.FileUpload
	BaseURL string
}

// Create valida, calcula el slug canónico, sube logo y QR y recién entonces inserta el registro.
// Si cualquier paso previo al insert falla no queda ningún negocio persistido.
// Slug o email duplicados devuelven *domain.ConflictError (también si la carrera la detecta el almacén).
func (uc *BusinessUseCase) Create(ctx context.Context, in CreateBusinessInput) (*dto.BusinessResponse, error) {
	req := in.Request
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := uc.Validator.Validate(req); err != nil {
		return nil, err
	}
	if err := validateLogo(in.Logo); err != nil {
		return nil, err
	}

	canonical := slug.Normalize(req.Name)
	if err := slug.Validate("name", canonical); err != nil {
		return nil, err
	}
	if err := uc.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if existing, err := uc.Businesses.GetBySlug(ctx, canonical); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.ConflictError{Field: "slug", Value: canonical}
	}
	if existing, err := uc.Businesses.GetByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.ConflictError{Field: "email", Value: req.Email}
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	b := &entity.Business{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Slug:         canonical,
		CategoryID:   req.CategoryID,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		WhatsApp:     strings.TrimSpace(req.WhatsApp),
		Address:      strings.TrimSpace(req.Address),
		Description:  strings.TrimSpace(req.Description),
		PasswordHash: hash,
		Status:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	log := uc.Log.With().Str("business_id", b.ID).Str("slug", b.Slug).Logger()

	if b.LogoURL, err = uc.uploadLogo(ctx, b.ID, in.Logo); err != nil {
		log.Error().Err(err).Msg("subida de logo fallida, se aborta el alta")
		return nil, err
	}
	menuURL := qr.MenuURL(in.BaseURL, b.Slug)
	if b.QRCodeURL, err = uc.QR.Issue(ctx, menuURL, b.ID); err != nil {
		log.Error().Err(err).Str("target", menuURL).Msg("emisión QR fallida, se aborta el alta")
		return nil, err
	}

	if err := uc.Businesses.Create(ctx, b); err != nil {
		return nil, err
	}
	log.Info().Str("qr_url", b.QRCodeURL).Msg("negocio creado")
	return toBusinessResponse(b, menuURL), nil
}

// GetByID obtiene un negocio por ID.
func (uc *BusinessUseCase) GetByID(ctx context.Context, id, baseURL string) (*dto.BusinessResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBusinessResponse(b, qr.MenuURL(baseURL, b.Slug)), nil
}

// List lista negocios con paginación.
func (uc *BusinessUseCase) List(ctx context.Context, page dto.PageRequest, baseURL string) (*dto.BusinessListResponse, error) {
	page.DefaultPage()
	list, err := uc.Businesses.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.Businesses.Count(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBusinessResponse(b, qr.MenuURL(baseURL, b.Slug)))
	}
	return &dto.BusinessListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update aplica los campos presentes. Nunca recalcula slug ni QR: la URL impresa sigue valiendo.
func (uc *BusinessUseCase) Update(ctx context.Context, id string, in dto.UpdateBusinessRequest, logo *dto.FileUpload) (*dto.BusinessResponse, error) {
	if err := uc.Validator.Validate(in); err != nil {
		return nil, err
	}
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "es requerido")
		}
		b.Name = name
	}
	if in.CategoryID != nil && *in.CategoryID != b.CategoryID {
		if err := uc.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		b.CategoryID = *in.CategoryID
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email != b.Email {
			if existing, err := uc.Businesses.GetByEmail(ctx, email); err != nil {
				return nil, err
			} else if existing != nil && existing.ID != b.ID {
				return nil, &domain.ConflictError{Field: "email", Value: email}
			}
			b.Email = email
		}
	}
	if in.Password != nil {
		if b.PasswordHash, err = password.Hash(*in.Password); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}
	if in.Phone != nil {
		b.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.WhatsApp != nil {
		b.WhatsApp = strings.TrimSpace(*in.WhatsApp)
	}
	if in.Address != nil {
		b.Address = strings.TrimSpace(*in.Address)
	}
	if in.Description != nil {
		b.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		b.Status = *in.Status
	}
	if logo != nil {
		if err := validateLogo(logo); err != nil {
			return nil, err
		}
		if b.LogoURL, err = uc.uploadLogo(ctx, b.ID, logo); err != nil {
			return nil, err
		}
	}

	b.UpdatedAt = time.Now()
	if err := uc.Businesses.Update(ctx, b); err != nil {
		return nil, err
	}
	return toBusinessResponse(b, ""), nil
}

// Delete elimina el negocio en cascada (productos, secciones y negocio) en una sola transacción.
func (uc *BusinessUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	err := uc.Tx.RunCatalog(ctx, func(
		businessRepo repository.BusinessRepository,
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		if err := categoryRepo.DeleteByBusiness(ctx, id); err != nil {
			return err
		}
		return businessRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.Log.Info().Str("business_id", id).Msg("negocio eliminado con sus dependientes")
	return nil
}

// RegenerateQR reemite el QR de un negocio contra baseURL y sobrescribe la referencia.
func (uc *BusinessUseCase) RegenerateQR(ctx context.Context, id, baseURL string) (*dto.RegenerateQRResponse, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	menuURL := qr.MenuURL(baseURL, b.Slug)
	ref, err := uc.QR.Issue(ctx, menuURL, b.ID)
	if err != nil {
		return nil, err
	}
	if err := uc.Businesses.UpdateQRCode(ctx, b.ID, ref); err != nil {
		return nil, err
	}
	uc.Log.Info().Str("business_id", b.ID).Str("target", menuURL).Msg("QR reemitido")
	return &dto.RegenerateQRResponse{ID: b.ID, MenuURL: menuURL, QRCodeURL: ref}, nil
}

// QRCard genera la tarjeta PDF imprimible del negocio.
func (uc *BusinessUseCase) QRCard(ctx context.Context, id, baseURL string) ([]byte, error) {
	b, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.Card.GenerateQRCard(ctx, b, qr.MenuURL(baseURL, b.Slug))
}

// Export genera el XLSX con todos los negocios.
func (uc *BusinessUseCase) Export(ctx context.Context, baseURL string) ([]byte, error) {
	categories, err := uc.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var rows []ExportRow
	for offset := 0; ; offset += exportPageSize {
		page, err := uc.Businesses.List(ctx, exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, b := range page {
			rows = append(rows, ExportRow{Business: b, Category: names[b.CategoryID], MenuURL: qr.MenuURL(baseURL, b.Slug)})
		}
		if len(page) < exportPageSize {
			break
		}
	}
	return uc.Exporter.ExportBusinesses(ctx, rows)
}

func (uc *BusinessUseCase) get(ctx context.Context, id string) (*entity.Business, error) {
	b, err := uc.Businesses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (uc *BusinessUseCase) ensureCategory(ctx context.Context, id string) error {
	c, err := uc.Categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.NewValidationError("category_id", "no existe")
	}
	return nil
}

func (uc *BusinessUseCase) uploadLogo(ctx context.Context, businessID string, logo *dto.FileUpload) (string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, uc.UploadTimeout)
	defer cancel()
	ref, err := uc.Uploader.Upload(uploadCtx, qr.UploadInput{
		Data:        logo.Data,
		Folder:      LogoFolder,
		PublicID:    qr.PublicID(businessID),
		ContentType: logo.ContentType,
	})
	if err == nil && ref == "" {
		err = errors.New("el hosting no devolvió URL")
	}
	if err != nil {
		return "", domain.NewUpstreamError("storage", err)
	}
	return ref, nil
}

func validateLogo(logo *dto.FileUpload) error {
	if logo == nil || len(logo.Data) == 0 {
		return domain.NewValidationError("logo", "es requerido")
	}
	if !strings.HasPrefix(logo.ContentType, "image/") {
		return domain.NewValidationError("logo", "debe ser una imagen")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toBusinessResponse(b *entity.Business, menuURL string) *dto.BusinessResponse {
	if b == nil {
		return nil
	}
	return &dto.BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		CategoryID:  b.CategoryID,
		Email:       b.Email,
		Phone:       b.Phone,
		WhatsApp:    b.WhatsApp,
		Address:     b.Address,
		Description: b.Description,
		LogoURL:     b.LogoURL,
		QRCodeURL:   b.QRCodeURL,
		MenuURL:     menuURL,
		Status:      b.Status,
		Views:       b.Views,
		Shares:      b.Shares,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
