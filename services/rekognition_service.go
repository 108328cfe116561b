package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// RekognitionService labels food photos when no language model is
// available to parse them.
type RekognitionService struct {
	client *rekognition.Client
	http   *http.Client
}

func NewRekognitionService() (*RekognitionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &RekognitionService{
		client: rekognition.NewFromConfig(cfg),
		http:   &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// DetectLabelsFromURL accepts either a data URI or a fetchable image
// URL and returns the top labels.
func (r *RekognitionService) DetectLabelsFromURL(imageURL string) ([]string, error) {
	data, err := r.imageBytes(imageURL)
	if err != nil {
		return nil, err
	}

	out, err := r.client.DetectLabels(context.TODO(), &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}

func (r *RekognitionService) imageBytes(imageURL string) ([]byte, error) {
	if strings.HasPrefix(imageURL, "data:image") {
		idx := strings.Index(imageURL, ",")
		if idx < 0 {
			return nil, errors.New("invalid data URI")
		}
		return base64.StdEncoding.DecodeString(imageURL[idx+1:])
	}

	resp, err := r.http.Get(imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image fetch error %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
