// Package secrets scans deployment configuration for embedded credentials.
package secrets

import (
	"sync"

	"github.com/zricethezav/gitleaks/v8/detect"
)

// Finding is one detected secret.
type Finding struct {
	Source  string // file or logical name that was scanned
	Line    int    // 1-based
	RuleID  string
	Message string
}

// Scanner wraps a gitleaks detector built from the default rule set.
type Scanner struct {
	mu       sync.Mutex
	detector *detect.Detector
}

// NewScanner builds a scanner with gitleaks' default rules.
func NewScanner() (*Scanner, error) {
	d, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, err
	}
	return &Scanner{detector: d}, nil
}

// Scan returns the secrets found in data. source labels the findings.
func (s *Scanner) Scan(source string, data []byte) []Finding {
	s.mu.Lock()
	hits := s.detector.DetectBytes(data)
	s.mu.Unlock()

	if len(hits) == 0 {
		return nil
	}

	findings := make([]Finding, 0, len(hits))
	for _, h := range hits {
		findings = append(findings, Finding{
			Source:  source,
			Line:    h.StartLine + 1, // gitleaks is 0-indexed
			RuleID:  h.RuleID,
			Message: h.Description + " (" + h.RuleID + ")",
		})
	}
	return findings
}
