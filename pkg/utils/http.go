package utils

import (
	"context"
	"fmt"
	"net/http"
)

// CheckStatus faz um GET e verifica apenas o status. O corpo é fechado sem ser lido,
// então a resposta não é baixada.
func CheckStatus(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	return nil
}
