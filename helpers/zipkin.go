package helpers

import (
	"log"
	"os"

	"github.com/openzipkin/zipkin-go"
	zipkinhttp "github.com/openzipkin/zipkin-go/middleware/http"
	"github.com/openzipkin/zipkin-go/reporter"
	httpreporter "github.com/openzipkin/zipkin-go/reporter/http"
)

// InitTracer creates the traced HTTP client every gateway request
// goes through. Without ZIPKIN_ADDRESS spans are dropped locally.
func InitTracer() *zipkinhttp.Client {
	var spanReporter reporter.Reporter
	if os.Getenv("ZIPKIN_ADDRESS") != "" {
		spanReporter = httpreporter.NewReporter("http://" + os.Getenv("ZIPKIN_ADDRESS") + "/api/v2/spans")
	} else {
		spanReporter = reporter.NewNoopReporter()
	}

	// create our local service endpoint
	endpoint, err := zipkin.NewEndpoint("pixelgramClient", "localhost:0")
	if err != nil {
		log.Printf("unable to create local endpoint: %+v\n", err)
	}

	// initialize our tracer
	tracer, err := zipkin.NewTracer(spanReporter, zipkin.WithLocalEndpoint(endpoint))
	if err != nil {
		log.Printf("unable to create tracer: %+v\n", err)
	}

	// create global zipkin traced http client
	client, err := zipkinhttp.NewClient(tracer, zipkinhttp.ClientTrace(true))
	if err != nil {
		log.Printf("unable to create client: %+v\n", err)
	}

	return client
}
