package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/exec"
	"strings"
	"time"
)

const containerPrefix = "weatherhistory-integration"

type service struct {
	name  string
	image string
	port  string
	args  []string
}

var services = []service{
	{
		name:  containerPrefix + "-postgres",
		image: "postgres:16-alpine",
		port:  "5433:5432",
		args:  []string{"-e", "POSTGRES_USER=test_user", "-e", "POSTGRES_PASSWORD=test_pass", "-e", "POSTGRES_DB=weatherhistory_test"},
	},
	{
		name:  containerPrefix + "-redis",
		image: "redis:7-alpine",
		port:  "6380:6379",
	},
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "setup":
		setupIntegrationTests()
	case "run":
		runIntegrationTests()
	case "cleanup":
		cleanupIntegrationTests()
	case "test":
		setupIntegrationTests()
		runIntegrationTests()
		cleanupIntegrationTests()
	case "status":
		showStatus()
	case "logs":
		showLogs()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Integration Test Runner")
	fmt.Println("Usage: go run ./cmd/integration-runner <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  setup   - Start PostgreSQL and Redis test containers")
	fmt.Println("  run     - Run integration tests against running containers")
	fmt.Println("  cleanup - Remove the test containers")
	fmt.Println("  test    - Full test cycle (setup + run + cleanup)")
	fmt.Println("  status  - Show test containers and the ports they use")
	fmt.Println("  logs    - Show container logs")
}

func setupIntegrationTests() {
	fmt.Printf("Setting up integration test environment (containers named %s-*)\n", containerPrefix)

	checkPortConflicts()
	cleanupIntegrationTests()

	for _, svc := range services {
		args := append([]string{"run", "-d", "--name", svc.name, "-p", svc.port}, svc.args...)
		args = append(args, svc.image)
		runCommand("docker", args...)
	}

	waitForServices()

	fmt.Println("Integration test environment is ready")
}

func runIntegrationTests() {
	fmt.Println("Running integration tests...")

	cmd := exec.Command("go", "test", "-v", "-tags=integration", "-timeout=10m", "-run", "TestPostgresRedisSuite", "./internal/app/...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("Integration tests failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Integration tests completed successfully")
}

func cleanupIntegrationTests() {
	fmt.Println("Removing integration test containers...")

	for _, svc := range services {
		_ = exec.Command("docker", "rm", "-f", "-v", svc.name).Run()
	}
}

func waitForServices() {
	fmt.Println("Waiting for services to be ready...")

	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		if checkServicesReady() {
			fmt.Println("All services are ready")
			return
		}

		fmt.Printf("Waiting for services... (%d/%d)\n", i+1, maxRetries)
		time.Sleep(2 * time.Second)
	}

	fmt.Println("Services failed to start within timeout")
	showLogs()
	os.Exit(1)
}

func hostPort(svc service) string {
	return strings.SplitN(svc.port, ":", 2)[0]
}

func checkPortConflicts() {
	var conflicts []string
	for _, svc := range services {
		ln, err := net.Listen("tcp", "127.0.0.1:"+hostPort(svc))
		if err != nil {
			conflicts = append(conflicts, hostPort(svc))
			continue
		}
		_ = ln.Close()
	}

	if len(conflicts) > 0 {
		fmt.Printf("Warning: The following ports are in use: %s\n", strings.Join(conflicts, ", "))
		fmt.Println("Integration tests may fail if these ports conflict with test services.")
	}
}

func checkServicesReady() bool {
	if exec.Command("docker", "exec", services[0].name, "pg_isready", "-U", "test_user").Run() != nil {
		return false
	}
	out, err := exec.Command("docker", "exec", services[1].name, "redis-cli", "ping").Output()
	return err == nil && strings.TrimSpace(string(out)) == "PONG"
}

func showStatus() {
	fmt.Println("Integration test containers:")
	runCommand("docker", "ps", "-a", "--filter", "name="+containerPrefix, "--format", "table {{.Names}}\t{{.Status}}\t{{.Ports}}")

	fmt.Println("\nTest ports:")
	for _, svc := range services {
		fmt.Printf("  - %s (%s)\n", hostPort(svc), svc.image)
	}
	fmt.Printf("\nOnly containers named %s-* are created or removed.\n", containerPrefix)
}

func showLogs() {
	for _, svc := range services {
		fmt.Printf("==> %s\n", svc.name)
		runCommand("docker", "logs", "--tail", "50", svc.name)
	}
}

func runCommand(name string, args ...string) {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		log.Printf("Command failed: %s %v - %v", name, args, err)
	}
}
