package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/hackflow/hackflow-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileTypes_Default(t *testing.T) {
	got, err := parseProfileTypes("")
	require.NoError(t, err)
	assert.Equal(t, defaultProfileTypes, got)
}

func TestParseProfileTypes_Custom(t *testing.T) {
	got, err := parseProfileTypes("cpu, alloc_space,mutex")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseProfileTypes_Invalid(t *testing.T) {
	_, err := parseProfileTypes("cpu,unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported O11Y_PROFILING_SAMPLE_TYPES")
}

func TestBuildApplicationName(t *testing.T) {
	got := buildApplicationName("hackflow-api", "hackflow-api", "hackflow", "production", "1.0.0", "inst-1")
	assert.Equal(t, "hackflow-api{service_name=hackflow-api,namespace=hackflow,environment=production,service_version=1.0.0,instance=inst-1}", got)
}

func TestBuildApplicationName_DefaultsBaseName(t *testing.T) {
	got := buildApplicationName("  ", "svc", "ns", "development", "dev", "local")
	assert.Equal(t, "hackflow-api{service_name=svc,namespace=ns,environment=development,service_version=dev,instance=local}", got)
}

func TestInitProfiler_Disabled(t *testing.T) {
	stop, err := InitProfiler(config.ProfilingConfig{}, "svc", "ns", "dev", "local", "development")
	require.NoError(t, err)
	stop()
}

func TestInitProfiler_RequiresEndpoint(t *testing.T) {
	_, err := InitProfiler(config.ProfilingConfig{Enabled: true, Endpoint: "  "}, "svc", "ns", "dev", "local", "development")
	assert.Error(t, err)
}
