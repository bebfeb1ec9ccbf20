package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stamp/internal/app"
	"go.trai.ch/stamp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)
	telemetry.EXPECT().Close().Return(nil)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:       app.New(nil, nil, nil, nil, nil, nil, nil, log, telemetry),
			Logger:    log,
			Telemetry: telemetry,
		}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, stdout, new(bytes.Buffer), provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "stamp version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loadErr := errors.New("load failed")
	manifests := mocks.NewMockManifestProvider(ctrl)
	manifests.EXPECT().Load("", "").Return(nil, loadErr)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(loadErr)

	provider := func(_ context.Context) (*app.Components, error) {
		return &app.Components{
			App:    app.New(manifests, nil, nil, nil, nil, nil, nil, log, nil),
			Logger: log,
		}, nil
	}

	exitCode := run(t.Context(), []string{"generate"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
