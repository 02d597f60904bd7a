// Package artifact loads the versioned bundle of trained-model files the
// scoring service needs: predictor, explainer, feature schema, encoding
// tables, and decision policy. Loading happens exactly once at startup;
// any missing or inconsistent file fails the load and the service refuses
// to become ready.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/asah-capstone-a25/leadscore/internal/domain/model"
)

// manifest is the top-level description of a bundle directory.
type manifest struct {
	Version       string   `yaml:"version"`
	ModelFile     string   `yaml:"model_file"`
	EncodersFile  string   `yaml:"encoders_file"`
	ExplainerFile string   `yaml:"explainer_file"`
	FeatureNames  []string `yaml:"feature_names"`
	Policy        struct {
		DecisionThreshold float64 `yaml:"decision_threshold"`
		RiskBands         struct {
			MediumMin float64 `yaml:"medium_min"`
			HighMin   float64 `yaml:"high_min"`
		} `yaml:"risk_bands"`
	} `yaml:"policy"`
}

// modelFile is the serialized logistic predictor.
type modelFile struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// explainerFile is the serialized explainer state.
type explainerFile struct {
	Background []float64 `json:"background"`
}

// Load reads a bundle from a directory and cross-validates its parts.
// It is called once during process initialization; a returned error is a
// fatal configuration error.
func Load(dir string) (*model.Bundle, error) {
	manifestPath := filepath.Join(dir, "manifest.yaml")
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("read bundle manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse bundle manifest: %w", err)
	}
	if m.ModelFile == "" || m.EncodersFile == "" || m.ExplainerFile == "" {
		return nil, fmt.Errorf("bundle manifest must name model, encoders and explainer files")
	}

	var mf modelFile
	if err := readJSON(filepath.Join(dir, m.ModelFile), &mf); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	predictor, err := NewLogisticModel(mf.Coefficients, mf.Intercept)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	var encoders map[string]map[string]float64
	if err := readJSON(filepath.Join(dir, m.EncodersFile), &encoders); err != nil {
		return nil, fmt.Errorf("load encoders: %w", err)
	}

	var ef explainerFile
	if err := readJSON(filepath.Join(dir, m.ExplainerFile), &ef); err != nil {
		return nil, fmt.Errorf("load explainer: %w", err)
	}
	explainer, err := NewLinearExplainer(predictor, ef.Background)
	if err != nil {
		return nil, fmt.Errorf("load explainer: %w", err)
	}

	policy := model.Policy{
		DecisionThreshold: m.Policy.DecisionThreshold,
	}
	policy.RiskBands.MediumMin = m.Policy.RiskBands.MediumMin
	policy.RiskBands.HighMin = m.Policy.RiskBands.HighMin

	bundle, err := model.NewBundle(m.Version, m.FeatureNames, encoders, predictor, explainer, policy)
	if err != nil {
		return nil, fmt.Errorf("assemble bundle: %w", err)
	}

	return bundle, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
