package musclechart

import (
	"fmt"

	"github.com/ukaji3/musclechart-go/pkg/musclechart/models"
)

// Series colors.
const (
	ColorMuscle    = "red"
	ColorAnabolic  = "black"
	ColorCatabolic = "yellow"
	ColorCompare   = "blue"
)

// Build lays out tables for mode. It performs no I/O.
func Build(mode Mode, tables []*models.Table) (*models.ChartSpec, error) {
	if !mode.Valid() {
		return nil, &ModeError{Mode: mode, Reason: fmt.Sprintf("unknown mode (must be one of %s)", modeList())}
	}
	if want := mode.TableCount(); len(tables) != want {
		return nil, &ModeError{
			Mode:   mode,
			Reason: fmt.Sprintf("expects %d input file(s), got %d", want, len(tables)),
		}
	}
	for i, t := range tables {
		if t == nil {
			return nil, &ModeError{Mode: mode, Reason: fmt.Sprintf("input %d is empty", i+1)}
		}
	}

	switch mode {
	case ModeDualSubplot:
		return buildDualSubplot(tables[0])
	case ModeComparison:
		return buildComparison(tables[0], tables[1])
	default:
		return buildSingleSeries(tables[0])
	}
}

func buildSingleSeries(t *models.Table) (*models.ChartSpec, error) {
	top, err := muscleSubplot(ModeSingleSeries, t)
	if err != nil {
		return nil, err
	}
	return &models.ChartSpec{
		Title:    "Muscle Development",
		Sources:  []string{t.Source},
		Subplots: []models.Subplot{top},
	}, nil
}

func buildDualSubplot(t *models.Table) (*models.ChartSpec, error) {
	top, err := muscleSubplot(ModeDualSubplot, t)
	if err != nil {
		return nil, err
	}

	days, err := column(ModeDualSubplot, t, models.ColumnDay)
	if err != nil {
		return nil, err
	}
	anabolic, err := column(ModeDualSubplot, t, models.ColumnAnabolicHormone)
	if err != nil {
		return nil, err
	}
	catabolic, err := column(ModeDualSubplot, t, models.ColumnCatabolicHormone)
	if err != nil {
		return nil, err
	}

	bottom := models.Subplot{
		Title:  "Hormones",
		XLabel: models.ColumnDay,
		YLabel: "Hormone Level",
		Legend: true,
		Grid:   true,
		Series: []models.Series{
			{Name: "Anabolic", X: days, Y: anabolic, Color: ColorAnabolic},
			{Name: "Catabolic", X: days, Y: catabolic, Color: ColorCatabolic},
		},
	}

	return &models.ChartSpec{
		Title:    "Muscle Development and Hormones",
		Sources:  []string{t.Source},
		Subplots: []models.Subplot{top, bottom},
	}, nil
}

func buildComparison(a, b *models.Table) (*models.ChartSpec, error) {
	sp := models.Subplot{
		Title:  "Comparison of Muscle Development",
		XLabel: models.ColumnDay,
		YLabel: models.ColumnMuscleMass,
		Legend: true,
		Grid:   true,
	}

	colors := []string{ColorMuscle, ColorCompare}
	for i, t := range []*models.Table{a, b} {
		days, err := column(ModeComparison, t, models.ColumnDay)
		if err != nil {
			return nil, err
		}
		mass, err := column(ModeComparison, t, models.ColumnMuscleMass)
		if err != nil {
			return nil, err
		}
		sp.Series = append(sp.Series, models.Series{
			Name:  fmt.Sprintf("Muscle Mass (File %d: %s)", i+1, t.Source),
			X:     days,
			Y:     mass,
			Color: colors[i],
		})
	}

	return &models.ChartSpec{
		Title:    sp.Title,
		Sources:  []string{a.Source, b.Source},
		Subplots: []models.Subplot{sp},
	}, nil
}

// muscleSubplot is the Day vs Muscle Mass axes shared by the single-table modes.
func muscleSubplot(mode Mode, t *models.Table) (models.Subplot, error) {
	days, err := column(mode, t, models.ColumnDay)
	if err != nil {
		return models.Subplot{}, err
	}
	mass, err := column(mode, t, models.ColumnMuscleMass)
	if err != nil {
		return models.Subplot{}, err
	}
	return models.Subplot{
		Title:  "Muscle Development",
		XLabel: models.ColumnDay,
		YLabel: models.ColumnMuscleMass,
		Grid:   true,
		Series: []models.Series{
			{Name: models.ColumnMuscleMass, X: days, Y: mass, Color: ColorMuscle},
		},
	}, nil
}

func column(mode Mode, t *models.Table, name string) ([]float64, error) {
	v, ok := t.Column(name)
	if !ok {
		return nil, &ModeError{Mode: mode, Reason: fmt.Sprintf("%s has no %q column", t.Source, name)}
	}
	return v, nil
}
