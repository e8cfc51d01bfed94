package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-hivemind/internal/essence"
	"github.com/MKhiriev/go-hivemind/internal/logger"
	"github.com/MKhiriev/go-hivemind/internal/mock/servicemock"
	"github.com/MKhiriev/go-hivemind/internal/service"
	"github.com/MKhiriev/go-hivemind/models"
)

const testTraceparent = "00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01"

func newTestConn(t *testing.T) (*grpc.ClientConn, *servicemock.MockCoordinator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	coordinator := servicemock.NewMockCoordinator(ctrl)

	h := NewHandler(&service.Services{Coordinator: coordinator}, logger.Nop())

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn, coordinator
}

func invokeSubmit(ctx context.Context, conn *grpc.ClientConn, body []byte) ([]byte, metadata.MD, error) {
	var (
		out    []byte
		header metadata.MD
	)
	err := conn.Invoke(ctx, SubmitMethod, body, &out, grpc.CallContentSubtype(CodecName), grpc.Header(&header))
	return out, header, err
}

func TestSubmit_Actions(t *testing.T) {
	tests := []struct {
		name            string
		action          models.Action
		wantStatus      string
		wantContentType string
		wantBody        string
	}{
		{name: "none", action: models.NoAction(), wantStatus: StatusNoContent},
		{
			name:            "fetch request",
			action:          models.Action{Kind: models.ActionRequestFetch, Body: []byte("2,1;"), RequestedType: models.MediaTypeJSON},
			wantStatus:      StatusOK,
			wantContentType: "application/hive-essence, application/json",
			wantBody:        "2,1;",
		},
		{
			name:            "delivered payload",
			action:          models.Action{Kind: models.ActionDeliverPayload, Body: []byte(`[]`), MediaType: models.MediaTypeJSON},
			wantStatus:      StatusOK,
			wantContentType: models.MediaTypeJSON,
			wantBody:        `[]`,
		},
		{
			name:            "forced update",
			action:          models.Action{Kind: models.ActionForceUpdate, Body: []byte("1,1;")},
			wantStatus:      StatusConflict,
			wantContentType: models.MediaTypeDigest,
			wantBody:        "1,1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, coordinator := newTestConn(t)

			coordinator.EXPECT().Submit(gomock.Any(), models.Submission{
				ClientID: testTraceparent,
				Body:     []byte("1,1;"),
				Content:  models.ContentDescriptor{Kind: models.ContentKindDigest, RequestedType: models.MediaTypeJSON},
			}).Return(tt.action, nil)

			ctx := metadata.AppendToOutgoingContext(context.Background(),
				MetadataTraceparent, testTraceparent,
				MetadataContentType, models.MediaTypeDigest,
				MetadataContentType, models.MediaTypeJSON,
			)

			out, header, err := invokeSubmit(ctx, conn, []byte("1,1;"))
			require.NoError(t, err)

			assert.Equal(t, tt.wantBody, string(out))
			assert.Equal(t, []string{testTraceparent}, header.Get(MetadataTraceparent))
			assert.Equal(t, []string{tt.wantStatus}, header.Get(MetadataStatus))
			if tt.wantContentType != "" {
				assert.Equal(t, []string{tt.wantContentType}, header.Get(MetadataContentType))
			} else {
				assert.Empty(t, header.Get(MetadataContentType))
			}
		})
	}
}

func TestSubmit_GeneratesTraceparent(t *testing.T) {
	conn, coordinator := newTestConn(t)

	var seen string
	coordinator.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Submission) (models.Action, error) {
			seen = s.ClientID
			return models.NoAction(), nil
		})

	_, header, err := invokeSubmit(context.Background(), conn, []byte("1,1;"))
	require.NoError(t, err)

	assert.Regexp(t, `^00-[0-9a-f]{32}-[0-9a-f]{16}-00$`, seen)
	assert.Equal(t, []string{seen}, header.Get(MetadataTraceparent))
}

func TestSubmit_InvalidDigest(t *testing.T) {
	conn, coordinator := newTestConn(t)

	coordinator.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.NoAction(), essence.ErrInvalidDigest)

	ctx := metadata.AppendToOutgoingContext(context.Background(), MetadataContentType, models.MediaTypeDigest)
	_, _, err := invokeSubmit(ctx, conn, []byte("x"))

	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRawCodec(t *testing.T) {
	c := RawCodec{}
	assert.Equal(t, CodecName, c.Name())

	b, err := c.Marshal([]byte("1,1;"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1,1;"), b)

	in := []byte("2,2;")
	b, err = c.Marshal(&in)
	require.NoError(t, err)
	assert.Equal(t, in, b)

	_, err = c.Marshal("text")
	assert.Error(t, err)

	var out []byte
	require.NoError(t, c.Unmarshal([]byte("3,3;"), &out))
	assert.Equal(t, []byte("3,3;"), out)

	var wrong string
	assert.Error(t, c.Unmarshal([]byte("x"), &wrong))
}

func TestCodeFromError(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, codeFromError(essence.ErrInvalidDigest))
	assert.Equal(t, codes.Internal, codeFromError(assert.AnError))
}
