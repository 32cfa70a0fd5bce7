package flowrec_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sfops/flowrec/pkg/flowrec"
)

func TestReconcileConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    flowrec.ReconcileConfig
		wantError bool
		errorType error
	}{
		{
			name: "valid config",
			config: flowrec.ReconcileConfig{
				PackageManifestPath:     "manifest/package.xml",
				DestructiveManifestPath: "manifest/destructiveChanges.xml",
				DescriptorDir:           flowrec.DefaultDescriptorDir,
				QueryTimeout:            flowrec.DefaultQueryTimeout,
			},
			wantError: false,
		},
		{
			name: "valid config with zero timeout",
			config: flowrec.ReconcileConfig{
				PackageManifestPath:     "manifest/package.xml",
				DestructiveManifestPath: "manifest/destructiveChanges.xml",
				DescriptorDir:           flowrec.DefaultDescriptorDir,
			},
			wantError: false,
		},
		{
			name: "missing package manifest path",
			config: flowrec.ReconcileConfig{
				DestructiveManifestPath: "manifest/destructiveChanges.xml",
				DescriptorDir:           flowrec.DefaultDescriptorDir,
			},
			wantError: true,
			errorType: flowrec.ErrInvalidConfig,
		},
		{
			name: "missing destructive manifest path",
			config: flowrec.ReconcileConfig{
				PackageManifestPath: "manifest/package.xml",
				DescriptorDir:       flowrec.DefaultDescriptorDir,
			},
			wantError: true,
			errorType: flowrec.ErrInvalidConfig,
		},
		{
			name: "missing descriptor dir",
			config: flowrec.ReconcileConfig{
				PackageManifestPath:     "manifest/package.xml",
				DestructiveManifestPath: "manifest/destructiveChanges.xml",
			},
			wantError: true,
			errorType: flowrec.ErrInvalidConfig,
		},
		{
			name: "negative timeout",
			config: flowrec.ReconcileConfig{
				PackageManifestPath:     "manifest/package.xml",
				DestructiveManifestPath: "manifest/destructiveChanges.xml",
				DescriptorDir:           flowrec.DefaultDescriptorDir,
				QueryTimeout:            -1 * time.Second,
			},
			wantError: true,
			errorType: flowrec.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error type %v, got %v", tt.errorType, err)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestReconcileConfig_Validate_CollectsAllFailures(t *testing.T) {
	config := flowrec.ReconcileConfig{QueryTimeout: -1 * time.Second}

	err := config.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	for _, fragment := range []string{
		"PackageManifestPath",
		"DestructiveManifestPath",
		"DescriptorDir",
		"timeout",
	} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected joined error to mention %q, got: %s", fragment, err.Error())
		}
	}
}

func TestFlowVersionRecord_DeletableID(t *testing.T) {
	tests := []struct {
		name   string
		record flowrec.FlowVersionRecord
		want   string
	}{
		{"simple", flowrec.FlowVersionRecord{DeveloperName: "Order_Flow", VersionNumber: 3}, "Order_Flow-3"},
		{"first version", flowrec.FlowVersionRecord{DeveloperName: "Lead_Router", VersionNumber: 1}, "Lead_Router-1"},
		{"double digit", flowrec.FlowVersionRecord{DeveloperName: "Case_Triage", VersionNumber: 12}, "Case_Triage-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.DeletableID(); got != tt.want {
				t.Errorf("DeletableID() = %q, want %q", got, tt.want)
			}
		})
	}
}
