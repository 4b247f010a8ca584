package servicebus

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"

	"youtube-companion/infrastructure/logger"
)

// NewServiceBus authenticates with DefaultAzureCredential. An empty namespace
// returns (nil, nil).
func NewServiceBus(_ context.Context, namespace string) (*azservicebus.Client, error) {
	if namespace == "" {
		logger.GetLogger().Info("Service Bus namespace not configured - event forwarding disabled")
		return nil, nil
	}
	if !strings.Contains(namespace, ".") {
		namespace = fmt.Sprintf("%s.servicebus.windows.net", namespace)
	}
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, cred, nil)
}
