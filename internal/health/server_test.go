package health

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
)

func startServer(t *testing.T) (*Server, *grpc.ClientConn) {
	t.Helper()
	srv := NewServer()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return srv, conn
}

func checkStatus(t *testing.T, client grpc_health_v1.HealthClient, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("Health check for %q failed: %v", service, err)
	}
	return resp.Status
}

func TestNewServer_HealthCheck(t *testing.T) {
	_, conn := startServer(t)
	healthClient := grpc_health_v1.NewHealthClient(conn)

	for _, service := range []string{"", ServiceName} {
		if status := checkStatus(t, healthClient, service); status != grpc_health_v1.HealthCheckResponse_SERVING {
			t.Errorf("Expected SERVING for %q, got %v", service, status)
		}
	}
}

func TestServer_SetServing(t *testing.T) {
	srv, conn := startServer(t)
	healthClient := grpc_health_v1.NewHealthClient(conn)

	srv.SetServing(false)
	if status := checkStatus(t, healthClient, ServiceName); status != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING after SetServing(false), got %v", status)
	}

	srv.SetServing(true)
	if status := checkStatus(t, healthClient, ""); status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING after SetServing(true), got %v", status)
	}
}

func TestNewServer_ReflectionEnabled(t *testing.T) {
	_, conn := startServer(t)

	reflectionClient := grpc_reflection_v1.NewServerReflectionClient(conn)
	stream, err := reflectionClient.ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("Failed to create reflection stream: %v", err)
	}

	err = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_ListServices{
			ListServices: "",
		},
	})
	if err != nil {
		t.Fatalf("Failed to send reflection request: %v", err)
	}

	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("Failed to receive reflection response: %v", err)
	}

	listResp := resp.GetListServicesResponse()
	if listResp == nil {
		t.Fatal("Expected list services response")
	}

	found := false
	for _, svc := range listResp.Service {
		if svc.Name == grpc_health_v1.Health_ServiceDesc.ServiceName {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected the health service to be listed, got %v", listResp.Service)
	}
}

func TestNewServer_CalledMultipleTimes(t *testing.T) {
	// Metrics registration must only happen once per process
	srv1 := NewServer()
	srv2 := NewServer()

	if srv1 == nil || srv2 == nil {
		t.Fatal("Expected non-nil servers from multiple calls")
	}
}
