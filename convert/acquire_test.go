package convert

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bytecast/codec"
	"github.com/hupe1980/bytecast/core"
	"github.com/hupe1980/bytecast/internal/testutil"
)

func TestAcquireURL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	conv := New()
	_, err := conv.EncodeBase64(context.Background(), srv.URL)
	var acqErr *core.AcquisitionError
	assert.ErrorAs(t, err, &acqErr)
	assert.Equal(t, "url", acqErr.Kind)
	assert.Contains(t, acqErr.Error(), "404")

	// loose contract collapses the same failure
	assert.Equal(t, "", conv.ToBase64(context.Background(), srv.URL))
}

func TestAcquireURL_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections from now on

	conv := New()
	_, err := conv.EncodeBase64(context.Background(), srv.URL)
	var acqErr *core.AcquisitionError
	assert.ErrorAs(t, err, &acqErr)
	assert.Equal(t, "url", acqErr.Kind)
}

func TestAcquireURL_SizeCap(t *testing.T) {
	payload := bytes.Repeat([]byte{'x'}, 2048)
	srv := testutil.ServeBytes(t, payload)

	capped := New(func(o *Options) { o.Config.MaxFetchBytes = 1024 })
	_, err := capped.EncodeBase64(context.Background(), srv.URL)
	var acqErr *core.AcquisitionError
	assert.ErrorAs(t, err, &acqErr)
	assert.Contains(t, acqErr.Error(), "exceeds 1024 bytes")

	// exactly at the cap is allowed
	atCap := New(func(o *Options) { o.Config.MaxFetchBytes = 2048 })
	text, err := atCap.EncodeBase64(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.NotEmpty(t, text)
}

func TestAcquireURL_DataURLInline(t *testing.T) {
	conv := New()
	ctx := context.Background()

	// base64 payload
	text, err := conv.EncodeHex(ctx, "data:text/plain;base64,VGVzdA==")
	assert.NoError(t, err)
	assert.Equal(t, "54657374", text) // "Test"

	// percent-encoded text payload
	text, err = conv.EncodeBase64(ctx, "data:,Hello%20world")
	assert.NoError(t, err)
	assert.Equal(t, "SGVsbG8gd29ybGQ=", text)

	// malformed payloads fail acquisition
	_, err = conv.EncodeBase64(ctx, "data:text/plain;base64,!!!")
	var acqErr *core.AcquisitionError
	assert.ErrorAs(t, err, &acqErr)
	assert.Equal(t, "url", acqErr.Kind)
}

func TestDecodeDataURL(t *testing.T) {
	out, err := decodeDataURL("data:application/octet-stream;base64,AAEC")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, out)

	out, err = decodeDataURL("data:,plain")
	assert.NoError(t, err)
	assert.Equal(t, []byte("plain"), out)

	_, err = decodeDataURL("data:no-comma")
	assert.Error(t, err)
}

func TestAcquire_BrowserEnvironment(t *testing.T) {
	conv := New(func(o *Options) { o.Config.Environment = core.EnvironmentBrowser })
	ctx := context.Background()

	// explicit path sources fail acquisition in the browser
	_, err := conv.EncodeBase64(ctx, core.NewFilePathSource("/tmp/x"))
	var acqErr *core.AcquisitionError
	assert.ErrorAs(t, err, &acqErr)
	assert.Equal(t, "file", acqErr.Kind)

	// bare non-URL strings never classify in the browser
	_, err = conv.EncodeBase64(ctx, "/tmp/x")
	assert.ErrorIs(t, err, core.ErrInvalidSource)

	// buffers flow through the portable codec path with identical output
	text, err := conv.EncodeBase64(ctx, []byte("Test content"))
	assert.NoError(t, err)
	assert.Equal(t, "VGVzdCBjb250ZW50", text)
}

type faultyStream struct {
	chunks [][]byte
	err    error
}

func (f *faultyStream) Next(context.Context) ([]byte, error) {
	if len(f.chunks) == 0 {
		return nil, f.err
	}
	chunk := f.chunks[0]
	f.chunks = f.chunks[1:]
	return chunk, nil
}

func TestAcquireStream_MidStreamFault(t *testing.T) {
	boom := errors.New("pull failed")
	conv := New()

	_, err := conv.EncodeBase64(context.Background(), core.ChunkStream(&faultyStream{
		chunks: [][]byte{[]byte("partial ")},
		err:    boom,
	}))
	var acqErr *core.AcquisitionError
	assert.ErrorAs(t, err, &acqErr)
	assert.Equal(t, "stream", acqErr.Kind)
	assert.ErrorIs(t, err, boom)
}

func TestAcquireStream_EmptyChunksSkipped(t *testing.T) {
	conv := New()
	stream := testutil.StreamOf([]byte("ab"), []byte{}, []byte("cd"))
	text, err := conv.EncodeHex(context.Background(), stream)
	assert.NoError(t, err)
	assert.Equal(t, "61626364", text)
}

func TestEncode_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := New()
	_, err := conv.EncodeBase64(ctx, core.NewChunkedStream([]byte("abc"), 1))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = conv.Decode(ctx, "VGVzdA==", codec.Base64)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFromEnv_AppliesConfiguration(t *testing.T) {
	t.Setenv("BYTECAST_ENVIRONMENT", "browser")
	t.Setenv("BYTECAST_MAX_FETCH_BYTES", "4096")
	t.Setenv("BYTECAST_FETCH_TIMEOUT", "2s")

	optFn, err := FromEnv()
	assert.NoError(t, err)

	var opts Options
	opts.Config = DefaultConfig
	optFn(&opts)
	assert.Equal(t, core.EnvironmentBrowser, opts.Config.Environment)
	assert.Equal(t, int64(4096), opts.Config.MaxFetchBytes)
	assert.NotNil(t, opts.HTTPClient)
	assert.Equal(t, "2s", opts.HTTPClient.Timeout.String())
}

func TestFromEnv_RejectsUnknownEnvironment(t *testing.T) {
	t.Setenv("BYTECAST_ENVIRONMENT", "mainframe")
	_, err := FromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mainframe")
}

func TestParseEnvironment(t *testing.T) {
	for raw, want := range map[string]core.Environment{
		"":        core.EnvironmentAuto,
		"auto":    core.EnvironmentAuto,
		"Server":  core.EnvironmentServer,
		"BROWSER": core.EnvironmentBrowser,
		" server": core.EnvironmentServer,
	} {
		got, err := ParseEnvironment(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseEnvironment("cloud")
	assert.Error(t, err)
}
