package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/menuqr-api/internal/application/dto"
	"github.com/jhoicas/menuqr-api/internal/application/qr"
	"github.com/jhoicas/menuqr-api/internal/application/usecase"
	"github.com/jhoicas/menuqr-api/internal/domain"
	"github.com/jhoicas/menuqr-api/internal/domain/entity"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/memory"
	"github.com/jhoicas/menuqr-api/internal/infrastructure/qrcode"
	"github.com/jhoicas/menuqr-api/pkg/password"
	"github.com/jhoicas/menuqr-api/pkg/validation"
)

const baseURL = "https://menu.test"

// fakeUploader hosting en memoria, seguro para uso concurrente.
type fakeUploader struct {
	mu       sync.Mutex
	uploads  []qr.UploadInput
	failDirs map[string]bool
}

func (f *fakeUploader) Upload(_ context.Context, in qr.UploadInput) (string, error) {
	if f.failDirs[in.Folder] {
		return "", errors.New("hosting caído")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, in)
	return "https://cdn.test/" + in.Folder + "/" + in.PublicID, nil
}

type fakeCard struct{ menuURL string }

func (f *fakeCard) GenerateQRCard(_ context.Context, _ *entity.Business, menuURL string) ([]byte, error) {
	f.menuURL = menuURL
	return []byte("%PDF-fake"), nil
}

type fakeExporter struct{ rows []usecase.ExportRow }

func (f *fakeExporter) ExportBusinesses(_ context.Context, rows []usecase.ExportRow) ([]byte, error) {
	f.rows = rows
	return []byte("xlsx"), nil
}

type harness struct {
	store    *memory.Store
	uploader *fakeUploader
	card     *fakeCard
	exporter *fakeExporter
	uc       *usecase.BusinessUseCase
	catID    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:    memory.NewStore(),
		uploader: &fakeUploader{failDirs: map[string]bool{}},
		card:     &fakeCard{},
		exporter: &fakeExporter{},
	}
	v := validation.New()
	cat, err := usecase.NewBusinessCategoryUseCase(h.store.BusinessCategories(), h.store.Businesses(), v).
		Create(context.Background(), dto.BusinessCategoryRequest{Name: "Restaurantes"})
	require.NoError(t, err)
	h.catID = cat.ID

	h.uc = usecase.NewBusinessUseCase(usecase.BusinessDeps{
		Businesses: h.store.Businesses(),
		Categories: h.store.BusinessCategories(),
		Tx:         h.store,
		Uploader:   h.uploader,
		QR:         qr.NewService(qrcode.NewEncoder(), h.uploader, 0, zerolog.Nop()),
		Card:       h.card,
		Exporter:   h.exporter,
		Validator:  v,
		Log:        zerolog.Nop(),
	})
	return h
}

func (h *harness) input(name, email string) usecase.CreateBusinessInput {
	return usecase.CreateBusinessInput{
		Request: dto.CreateBusinessRequest{
			Name:       name,
			CategoryID: h.catID,
			Email:      email,
			Password:   "secreto123",
		},
		Logo:    &dto.FileUpload{Data: []byte{0x89, 'P', 'N', 'G'}, ContentType: "image/png"},
		BaseURL: baseURL,
	}
}

func TestCreate_SlugCanonicoYQR(t *testing.T) {
	h := newHarness(t)

	out, err := h.uc.Create(context.Background(), h.input("  Italian   Bistro ", "Owner@Bistro.co"))
	require.NoError(t, err)
	assert.Equal(t, "italian-bistro", out.Slug)
	assert.Equal(t, "Italian   Bistro", out.Name)
	assert.Equal(t, "owner@bistro.co", out.Email)
	assert.Equal(t, baseURL+"/b/italian-bistro", out.MenuURL)
	assert.Equal(t, "https://cdn.test/qr/business-"+out.ID, out.QRCodeURL)
	assert.Equal(t, "https://cdn.test/logos/business-"+out.ID, out.LogoURL)
	assert.True(t, out.Status)

	stored, err := h.store.Businesses().GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, password.Compare("secreto123", stored.PasswordHash))
}

func TestCreate_Validaciones(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	in := h.input("", "a@b.co")
	_, err := h.uc.Create(ctx, in)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	in = h.input("   ", "a@b.co")
	_, err = h.uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = h.input("Ok", "a@b.co")
	in.Logo = nil
	_, err = h.uc.Create(ctx, in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "logo", verr.Field)

	in = h.input("Ok", "a@b.co")
	in.Request.CategoryID = "no-existe"
	_, err = h.uc.Create(ctx, in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category_id", verr.Field)

	n, err := h.store.Businesses().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreate_Duplicados(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.uc.Create(ctx, h.input("Pizza Roma", "roma@pizza.co"))
	require.NoError(t, err)

	_, err = h.uc.Create(ctx, h.input("PIZZA   roma", "otra@pizza.co"))
	var cerr *domain.ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "slug", cerr.Field)

	_, err = h.uc.Create(ctx, h.input("Pizza Napoli", "ROMA@pizza.co"))
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "email", cerr.Field)
}

func TestCreate_ConcurrenteMismoSlug(t *testing.T) {
	h := newHarness(t)
	const n = 8

	var (
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		email := strings.Repeat("x", i+1) + "@race.co"
		g.Go(func() error {
			_, err := h.uc.Create(context.Background(), h.input("Race Cafe", email))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	count, err := h.store.Businesses().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreate_FalloDeHostingNoPersiste(t *testing.T) {
	for _, folder := range []string{usecase.LogoFolder, qr.Folder} {
		t.Run(folder, func(t *testing.T) {
			h := newHarness(t)
			h.uploader.failDirs[folder] = true

			_, err := h.uc.Create(context.Background(), h.input("Fragile Shop", "f@shop.co"))
			var uerr *domain.UpstreamError
			require.ErrorAs(t, err, &uerr)
			assert.ErrorIs(t, err, domain.ErrUpstream)

			b, err := h.store.Businesses().GetBySlug(context.Background(), "fragile-shop")
			require.NoError(t, err)
			assert.Nil(t, b, "no debe quedar un negocio sin QR")
		})
	}
}

func TestUpdate_NoCambiaSlugNiQR(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	created, err := h.uc.Create(ctx, h.input("Old Name", "o@n.co"))
	require.NoError(t, err)

	name := "Brand New Name"
	off := false
	out, err := h.uc.Update(ctx, created.ID, dto.UpdateBusinessRequest{Name: &name, Status: &off}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Brand New Name", out.Name)
	assert.Equal(t, "old-name", out.Slug)
	assert.Equal(t, created.QRCodeURL, out.QRCodeURL)
	assert.False(t, out.Status)
}

func TestUpdate_EmailDuplicado(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.uc.Create(ctx, h.input("One", "one@x.co"))
	require.NoError(t, err)
	two, err := h.uc.Create(ctx, h.input("Two", "two@x.co"))
	require.NoError(t, err)

	email := "ONE@x.co"
	_, err = h.uc.Update(ctx, two.ID, dto.UpdateBusinessRequest{Email: &email}, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = h.uc.Update(ctx, "missing", dto.UpdateBusinessRequest{}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_EnCascada(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	created, err := h.uc.Create(ctx, h.input("Cascade Bar", "c@bar.co"))
	require.NoError(t, err)

	catalog := usecase.NewCatalogUseCase(h.store.Categories(), h.store.Products(), h.store, validation.New())
	sec, err := catalog.CreateCategory(ctx, created.ID, dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err)
	_, err = catalog.CreateProduct(ctx, created.ID, dto.CreateProductRequest{Name: "Agua", CategoryID: sec.ID})
	require.NoError(t, err)

	require.NoError(t, h.uc.Delete(ctx, created.ID))

	b, err := h.store.Businesses().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, b)
	cats, err := h.store.Categories().ListByBusiness(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, cats)
	prods, err := h.store.Products().ListByBusiness(ctx, created.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, prods)

	assert.ErrorIs(t, h.uc.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestRegenerateQR_NuevoDominio(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	created, err := h.uc.Create(ctx, h.input("Moved Cafe", "m@cafe.co"))
	require.NoError(t, err)

	out, err := h.uc.RegenerateQR(ctx, created.ID, "https://nuevo.example")
	require.NoError(t, err)
	assert.Equal(t, "https://nuevo.example/b/moved-cafe", out.MenuURL)
	assert.NotEmpty(t, out.QRCodeURL)

	_, err = h.uc.RegenerateQR(ctx, "missing", baseURL)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQRCardYExport(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	a, err := h.uc.Create(ctx, h.input("Alpha", "a@x.co"))
	require.NoError(t, err)
	_, err = h.uc.Create(ctx, h.input("Beta", "b@x.co"))
	require.NoError(t, err)

	pdf, err := h.uc.QRCard(ctx, a.ID, baseURL)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, baseURL+"/b/alpha", h.card.menuURL)

	_, err = h.uc.Export(ctx, baseURL)
	require.NoError(t, err)
	require.Len(t, h.exporter.rows, 2)
	for _, r := range h.exporter.rows {
		assert.Equal(t, "Restaurantes", r.Category)
		assert.True(t, strings.HasPrefix(r.MenuURL, baseURL+"/b/"))
	}
}

func TestList_Paginado(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	for _, name := range []string{"Uno", "Dos", "Tres"} {
		_, err := h.uc.Create(ctx, h.input(name, strings.ToLower(name)+"@x.co"))
		require.NoError(t, err)
	}

	out, err := h.uc.List(ctx, dto.PageRequest{Limit: 2}, baseURL)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Page.Total)
}
