package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// fakeS3 records uploads and optionally fails them.
type fakeS3 struct {
	fail   bool
	inputs []*s3manager.UploadInput
}

func (f *fakeS3) UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.fail {
		return nil, fmt.Errorf("access denied")
	}
	return &s3manager.UploadOutput{
		Location: "https://condo-photos.s3.amazonaws.com/" + aws.StringValue(input.Key),
	}, nil
}

func testUploader(fake *fakeS3) *Uploader {
	return &Uploader{s3: fake, bucket: "condo-photos", timeout: time.Second}
}

func TestUpload(t *testing.T) {
	fake := &fakeS3{}
	u := testUploader(fake)

	url, err := u.Upload(context.Background(), strings.NewReader("jpeg bytes"), "facade.JPG", "image/jpeg")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(fake.inputs) != 1 {
		t.Fatalf("got %d uploads, want 1", len(fake.inputs))
	}
	in := fake.inputs[0]
	if aws.StringValue(in.Bucket) != "condo-photos" {
		t.Errorf("bucket = %q, want condo-photos", aws.StringValue(in.Bucket))
	}
	key := aws.StringValue(in.Key)
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q, want lowercased .jpg extension", key)
	}
	if len(key) <= len(".jpg") {
		t.Errorf("key = %q, want uuid prefix", key)
	}
	if aws.StringValue(in.ContentType) != "image/jpeg" {
		t.Errorf("content type = %q, want image/jpeg", aws.StringValue(in.ContentType))
	}
	if !strings.HasSuffix(url, key) {
		t.Errorf("url = %q, want it to end with key %q", url, key)
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if string(body) != "jpeg bytes" {
		t.Errorf("body = %q, want %q", body, "jpeg bytes")
	}
}

func TestUploadUniqueKeys(t *testing.T) {
	fake := &fakeS3{}
	u := testUploader(fake)

	for range 2 {
		if _, err := u.Upload(context.Background(), strings.NewReader("x"), "photo.png", "image/png"); err != nil {
			t.Fatalf("upload: %v", err)
		}
	}

	first := aws.StringValue(fake.inputs[0].Key)
	second := aws.StringValue(fake.inputs[1].Key)
	if first == second {
		t.Errorf("keys collide: %q", first)
	}
}

func TestUploadFailure(t *testing.T) {
	u := testUploader(&fakeS3{fail: true})

	if _, err := u.Upload(context.Background(), strings.NewReader("x"), "photo.jpg", "image/jpeg"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewRequiresRegionAndBucket(t *testing.T) {
	if _, err := New("", "bucket", "", ""); err == nil {
		t.Error("expected error for empty region")
	}
	if _, err := New("eu-south-1", "", "", ""); err == nil {
		t.Error("expected error for empty bucket")
	}
}
