package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	dashdomain "vemio-dashboard/internal/dashboard/core/domain"
	navdomain "vemio-dashboard/internal/navigation/core/domain"
	"vemio-dashboard/internal/views/core/domain"
	"vemio-dashboard/internal/views/core/ports"
)

var (
	ErrViewNotFound        = errors.New("view not found")
	ErrInvalidTab          = errors.New("invalid tab")
	ErrInvalidMode         = errors.New("invalid opportunities mode")
	ErrInvalidPeriod       = errors.New("invalid time period")
	ErrInvalidLevel        = errors.New("invalid level")
	ErrAxisMismatch        = errors.New("level does not belong to axis")
	ErrInvalidSegmentation = errors.New("invalid segmentation")
)

const DefaultFetchTimeout = 10 * time.Second

type FilterInput struct {
	Axis  string // optional, must match the level's axis when set
	Level string
	Value string
}

// DashboardView is what the dashboard tab renders.
type DashboardView struct {
	View           domain.View
	Breadcrumb     []navdomain.BreadcrumbItem
	Loading        bool
	ErrorMessage   string
	ParameterCards []dashdomain.ParameterCard // empty while loading
	KPICards       []dashdomain.KPICard
}

type LevelOptions struct {
	Level   navdomain.Level
	Label   string
	Options []navdomain.Option
}

type FilterOptions struct {
	Levels  []LevelOptions
	Periods []navdomain.Option
}

type ExportFile struct {
	FileName    string
	ContentType string
	Body        []byte
}

type ViewUseCase struct {
	store        ports.ViewStorePort
	loader       ports.ParametersLoaderPort
	fetchTimeout time.Duration
	now          func() time.Time

	fetches sync.WaitGroup
}

func NewViewUseCase(store ports.ViewStorePort, loader ports.ParametersLoaderPort, fetchTimeout time.Duration) *ViewUseCase {
	if fetchTimeout <= 0 {
		fetchTimeout = DefaultFetchTimeout
	}
	return &ViewUseCase{
		store:        store,
		loader:       loader,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
	}
}

// Open creates a view and starts its one parameter fetch. The fetch outlives
// the request that opened the view.
func (uc *ViewUseCase) Open(ctx context.Context) (domain.View, error) {
	v := domain.NewView(uuid.New(), uc.now().UTC())
	if err := uc.store.Save(ctx, v); err != nil {
		return domain.View{}, err
	}

	uc.fetches.Add(1)
	go uc.loadParameters(v.ID)

	log.Printf("[views.open] view=%s", v.ID)
	return v, nil
}

// Wait blocks until every started parameter fetch has finished.
func (uc *ViewUseCase) Wait() {
	uc.fetches.Wait()
}

func (uc *ViewUseCase) loadParameters(id uuid.UUID) {
	defer uc.fetches.Done()

	ctx, cancel := context.WithTimeout(context.Background(), uc.fetchTimeout)
	defer cancel()

	res := uc.loader.Execute(ctx)

	_, ok := uc.store.Update(context.Background(), id, func(v *domain.View) {
		v.Parameters.Records = res.Records
		if res.Err != nil {
			v.Parameters.Status = domain.StatusFailed
			v.Parameters.Err = res.Err.Error()
			return
		}
		v.Parameters.Status = domain.StatusLoaded
	})
	if !ok {
		log.Printf("[views.fetch] view=%s closed before parameters arrived", id)
		return
	}

	if res.Err != nil {
		log.Printf("[views.fetch] view=%s error: %v", id, res.Err)
		return
	}
	log.Printf("[views.fetch] view=%s loaded from_source=%v", id, res.FromSource)
}

func (uc *ViewUseCase) Get(ctx context.Context, id uuid.UUID) (domain.View, error) {
	return uc.update(ctx, id, func(v *domain.View) {})
}

func (uc *ViewUseCase) Close(ctx context.Context, id uuid.UUID) error {
	if !uc.store.Delete(ctx, id) {
		return ErrViewNotFound
	}
	log.Printf("[views.close] view=%s", id)
	return nil
}

func (uc *ViewUseCase) SelectTab(ctx context.Context, id uuid.UUID, tab string) (domain.View, error) {
	t, ok := domain.ParseTab(tab)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}
	return uc.update(ctx, id, func(v *domain.View) { v.Tab = t })
}

func (uc *ViewUseCase) SetOpportunitiesMode(ctx context.Context, id uuid.UUID, mode string) (domain.View, error) {
	m, ok := domain.ParseOpportunitiesMode(mode)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return uc.update(ctx, id, func(v *domain.View) { v.OpportunitiesMode = m })
}

// SetPeriod only records the selection; the period does not filter data yet.
func (uc *ViewUseCase) SetPeriod(ctx context.Context, id uuid.UUID, period string) (domain.View, error) {
	p, ok := navdomain.ParseTimePeriod(period)
	if !ok {
		return domain.View{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
	return uc.update(ctx, id, func(v *domain.View) { v.Period = p })
}

// SetFilter changes one filter level and clears the deeper levels of its axis.
func (uc *ViewUseCase) SetFilter(ctx context.Context, id uuid.UUID, in FilterInput) (domain.View, error) {
	level, err := parseLevel(in.Level, false)
	if err != nil {
		return domain.View{}, err
	}

	if in.Axis != "" {
		axis, ok := navdomain.ParseAxis(in.Axis)
		if !ok {
			return domain.View{}, fmt.Errorf("%w: unknown axis %q", ErrAxisMismatch, in.Axis)
		}
		if got, _, _ := level.Locate(); got != axis {
			return domain.View{}, fmt.Errorf("%w: %s is a %s level", ErrAxisMismatch, level, got)
		}
	}

	if err := validateValue(level, in.Value); err != nil {
		return domain.View{}, err
	}

	return uc.update(ctx, id, func(v *domain.View) {
		v.Filters = navdomain.SetField(v.Filters, level, in.Value)
	})
}

// Navigate handles a breadcrumb click. The root crumb clears every filter.
func (uc *ViewUseCase) Navigate(ctx context.Context, id uuid.UUID, level, value string) (domain.View, error) {
	l, err := parseLevel(level, true)
	if err != nil {
		return domain.View{}, err
	}
	if err := validateValue(l, value); err != nil {
		return domain.View{}, err
	}

	return uc.update(ctx, id, func(v *domain.View) {
		v.Filters = navdomain.NavigateTo(v.Filters, l, value)
	})
}

// DismissError hides the inline error. The fallback records stay.
func (uc *ViewUseCase) DismissError(ctx context.Context, id uuid.UUID) (domain.View, error) {
	return uc.update(ctx, id, func(v *domain.View) { v.Parameters.ErrorDismissed = true })
}

func (uc *ViewUseCase) FilterOptions(ctx context.Context, id uuid.UUID) (FilterOptions, error) {
	v, err := uc.Get(ctx, id)
	if err != nil {
		return FilterOptions{}, err
	}

	levels := navdomain.AllLevels()
	out := FilterOptions{
		Levels:  make([]LevelOptions, 0, len(levels)),
		Periods: navdomain.TimePeriodOptions(),
	}
	for _, l := range levels {
		out.Levels = append(out.Levels, LevelOptions{
			Level:   l,
			Label:   l.Label(),
			Options: navdomain.Options(v.Filters, l),
		})
	}
	return out, nil
}

func (uc *ViewUseCase) Dashboard(ctx context.Context, id uuid.UUID) (DashboardView, error) {
	v, err := uc.Get(ctx, id)
	if err != nil {
		return DashboardView{}, err
	}

	out := DashboardView{
		View:           v,
		Breadcrumb:     navdomain.DeriveBreadcrumb(v.Filters),
		Loading:        v.Parameters.Loading(),
		ErrorMessage:   v.Parameters.ErrorMessage(),
		ParameterCards: []dashdomain.ParameterCard{},
		KPICards:       dashdomain.BuildKPICards(dashdomain.StaticKPIRecords()),
	}
	if !out.Loading {
		out.ParameterCards = dashdomain.BuildParameterCards(v.Parameters.EffectiveRecords())
	}
	return out, nil
}

// Export renders the CSV of what the view currently shows. Filters are
// logged but not part of the file.
func (uc *ViewUseCase) Export(ctx context.Context, id uuid.UUID) (ExportFile, error) {
	v, err := uc.Get(ctx, id)
	if err != nil {
		return ExportFile{}, err
	}

	body, err := dashdomain.BuildExportCSV(v.Parameters.EffectiveRecords(), dashdomain.StaticKPIRecords())
	if err != nil {
		return ExportFile{}, err
	}

	log.Printf("[views.export] view=%s filters=%v period=%s", v.ID, v.Filters.Values(), v.Period)

	return ExportFile{
		FileName:    dashdomain.ExportFileName(uc.now()),
		ContentType: dashdomain.ExportContentType,
		Body:        body,
	}, nil
}

func (uc *ViewUseCase) update(ctx context.Context, id uuid.UUID, fn func(v *domain.View)) (domain.View, error) {
	now := uc.now().UTC()
	v, ok := uc.store.Update(ctx, id, func(v *domain.View) {
		fn(v)
		v.LastSeenAt = now
	})
	if !ok {
		return domain.View{}, ErrViewNotFound
	}
	return v, nil
}

func parseLevel(s string, allowRoot bool) (navdomain.Level, error) {
	l, ok := navdomain.ParseLevel(s)
	if !ok || (!allowRoot && l == navdomain.LevelRoot) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

func validateValue(l navdomain.Level, value string) error {
	if l != navdomain.LevelSegmentation || value == "" {
		return nil
	}
	if _, ok := navdomain.ParseSegmentation(value); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSegmentation, value)
	}
	return nil
}
