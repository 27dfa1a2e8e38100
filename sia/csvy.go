package sia

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CSVY parameter-set persistence: a YAML front-matter header carrying the
// metadata and scalar parameters between two "---" marker lines, followed
// by a CSV body with one row per hour-of-year (1-based) and one column per
// profile. Profiles shorter than the longest one leave their trailing cells
// empty, so the historical 365-value zero-occupancy edge case survives a
// round trip unchanged.

const csvyMarker = "---"

// paramsHeader is the YAML front-matter shape of a parameter set.
type paramsHeader struct {
	Name               string  `yaml:"name"`
	BuildingType       string  `yaml:"building_type"`
	SourceDescription  string  `yaml:"source_description"`
	VariabilityActive  bool    `yaml:"variability_active"`
	DrawNumber         int     `yaml:"draw_number"`
	FloorAreaPerPerson float64 `yaml:"floor_area_per_person"`
	ActivityHeatGain   float64 `yaml:"activity_heat_gain"`
	ApplianceLevel     float64 `yaml:"appliance_level"`
	LightingDensity    float64 `yaml:"lighting_density"`
	LightingSetpoint   float64 `yaml:"lighting_setpoint"`
	DHWPowerPerArea    float64 `yaml:"dhw_power_per_area"`
	DHWLitersPerDay    float64 `yaml:"dhw_liters_per_day"`
	VentilationRate    float64 `yaml:"ventilation_rate"`
	InfiltrationRate   float64 `yaml:"infiltration_rate"`
}

// profileColumns fixes the CSV column order.
var profileColumns = []string{
	"occupancy",
	"appliances",
	"lighting",
	"dhw",
	"heating_setpoint",
	"cooling_setpoint",
	"ventilation",
	"infiltration",
}

func profilesOf(p *Parameters) [][]float64 {
	return [][]float64{
		p.OccupancyProfile,
		p.ApplianceProfile,
		p.LightingProfile,
		p.DHWProfile,
		p.HeatingSetpointProfile,
		p.CoolingSetpointProfile,
		p.VentilationProfile,
		p.InfiltrationProfile,
	}
}

// SaveParams writes a parameter set to path. The target file must not
// exist: parameter sets are never overwritten, to keep two incompatible
// datasets from mixing in one output folder.
func SaveParams(path string, p *Parameters) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("refusing to overwrite existing parameter set %s", path)
		}
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	header := paramsHeader{
		Name:               p.Name,
		BuildingType:       p.BuildingTypeName,
		SourceDescription:  p.SourceDescription,
		VariabilityActive:  p.VariabilityActive,
		DrawNumber:         p.DrawNumber,
		FloorAreaPerPerson: p.FloorAreaPerPerson,
		ActivityHeatGain:   p.ActivityHeatGain,
		ApplianceLevel:     p.ApplianceLevel,
		LightingDensity:    p.LightingDensity,
		LightingSetpoint:   p.LightingSetpoint,
		DHWPowerPerArea:    p.DHWPowerPerArea,
		DHWLitersPerDay:    p.DHWLitersPerDay,
		VentilationRate:    p.VentilationRate,
		InfiltrationRate:   p.InfiltrationRate,
	}
	headerBytes, err := yaml.Marshal(&header)
	if err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	fmt.Fprintln(w, csvyMarker)
	w.Write(headerBytes)
	fmt.Fprintln(w, csvyMarker)

	profiles := profilesOf(p)
	rows := 0
	for _, profile := range profiles {
		if len(profile) > rows {
			rows = len(profile)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"hour"}, profileColumns...)); err != nil {
		return fmt.Errorf("writing column header: %w", err)
	}
	record := make([]string, len(profileColumns)+1)
	for row := 0; row < rows; row++ {
		record[0] = strconv.Itoa(row + 1)
		for i, profile := range profiles {
			if row < len(profile) {
				record[i+1] = strconv.FormatFloat(profile[row], 'g', -1, 64)
			} else {
				record[i+1] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", row+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("writing body: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// LoadParams reads a parameter set back from a CSVY file.
func LoadParams(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	headerBytes, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var header paramsHeader
	if err := yaml.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("%s: parsing header: %w", path, err)
	}

	cr := csv.NewReader(bytes.NewReader(body))
	columns, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: reading column header: %w", path, err)
	}
	if len(columns) != len(profileColumns)+1 || columns[0] != "hour" {
		return nil, fmt.Errorf("%s: unexpected columns %v", path, columns)
	}
	for i, want := range profileColumns {
		if columns[i+1] != want {
			return nil, fmt.Errorf("%s: column %d is %q, want %q", path, i+1, columns[i+1], want)
		}
	}

	profiles := make([][]float64, len(profileColumns))
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: reading body: %w", path, err)
		}
		for i := range profileColumns {
			cell := record[i+1]
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: column %s, row %s: %w", path, profileColumns[i], record[0], err)
			}
			profiles[i] = append(profiles[i], v)
		}
	}

	return &Parameters{
		Name:                   header.Name,
		BuildingTypeName:       header.BuildingType,
		SourceDescription:      header.SourceDescription,
		VariabilityActive:      header.VariabilityActive,
		DrawNumber:             header.DrawNumber,
		FloorAreaPerPerson:     header.FloorAreaPerPerson,
		ActivityHeatGain:       header.ActivityHeatGain,
		ApplianceLevel:         header.ApplianceLevel,
		LightingDensity:        header.LightingDensity,
		LightingSetpoint:       header.LightingSetpoint,
		DHWPowerPerArea:        header.DHWPowerPerArea,
		DHWLitersPerDay:        header.DHWLitersPerDay,
		VentilationRate:        header.VentilationRate,
		InfiltrationRate:       header.InfiltrationRate,
		OccupancyProfile:       profiles[0],
		ApplianceProfile:       profiles[1],
		LightingProfile:        profiles[2],
		DHWProfile:             profiles[3],
		HeatingSetpointProfile: profiles[4],
		CoolingSetpointProfile: profiles[5],
		VentilationProfile:     profiles[6],
		InfiltrationProfile:    profiles[7],
	}, nil
}

// splitFrontMatter separates the YAML header between the two marker lines
// from the CSV body.
func splitFrontMatter(data []byte) (header, body []byte, err error) {
	text := string(data)
	if !strings.HasPrefix(text, csvyMarker+"\n") {
		return nil, nil, fmt.Errorf("missing front-matter marker")
	}
	rest := text[len(csvyMarker)+1:]
	end := strings.Index(rest, "\n"+csvyMarker+"\n")
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter")
	}
	return []byte(rest[:end+1]), []byte(rest[end+len(csvyMarker)+2:]), nil
}
