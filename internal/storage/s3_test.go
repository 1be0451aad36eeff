package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *mockObjectAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.DeleteObjectOutput), args.Error(1)
}

func TestS3Storage_Upload_ReturnsPublicURL(t *testing.T) {
	client := new(mockObjectAPI)
	st := NewWithClient(client, "booking-files", "https://cdn.example.com/public/booking-files/")

	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "booking-files" &&
			aws.ToString(in.Key) == "id-card/a@b.co-1700000000000.png" &&
			aws.ToString(in.ContentType) == "image/png" &&
			aws.ToInt64(in.ContentLength) == 3
	})).Return(&s3.PutObjectOutput{}, nil)

	url, err := st.Upload(context.Background(), "id-card/a@b.co-1700000000000.png", &domain.Upload{
		Filename:    "card.png",
		ContentType: "image/png",
		Size:        3,
		Content:     strings.NewReader("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/public/booking-files/id-card/a@b.co-1700000000000.png", url)
	client.AssertExpectations(t)
}

func TestS3Storage_Upload_Error(t *testing.T) {
	client := new(mockObjectAPI)
	st := NewWithClient(client, "booking-files", "https://cdn.example.com")

	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := st.Upload(context.Background(), "payment-slip/x.pdf", &domain.Upload{
		Size:    1,
		Content: strings.NewReader("x"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "payment-slip/x.pdf")
}

func TestS3Storage_Delete(t *testing.T) {
	client := new(mockObjectAPI)
	st := NewWithClient(client, "booking-files", "https://cdn.example.com")

	client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "id-card/x.jpg"
	})).Return(&s3.DeleteObjectOutput{}, nil)

	require.NoError(t, st.Delete(context.Background(), "id-card/x.jpg"))
	client.AssertExpectations(t)
}

func TestS3Storage_PublicURL_EscapesKey(t *testing.T) {
	st := NewWithClient(new(mockObjectAPI), "booking-files", "https://cdn.example.com/public")

	tests := []struct {
		name string
		key  string
	}{
		{"hash in email", "payment-slip/a#b@example.com-1.jpg"},
		{"query in email", "id-card/q?x@example.com-1.png"},
		{"plus and percent", "id-card/a+b%c@example.com-1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := st.PublicURL(tt.key)

			u, err := url.Parse(raw)
			require.NoError(t, err)
			assert.Empty(t, u.Fragment)
			assert.Empty(t, u.RawQuery)
			assert.Equal(t, "/public/"+tt.key, u.Path)
		})
	}

	assert.Equal(t,
		"https://cdn.example.com/public/payment-slip/a%23b@example.com-1.jpg",
		st.PublicURL("payment-slip/a#b@example.com-1.jpg"),
	)
}
