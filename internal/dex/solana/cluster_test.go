package solana

import "testing"

func TestEndpoint(t *testing.T) {
	cases := []struct {
		cluster, url, want string
	}{
		{"", "", "https://api.devnet.solana.com"},
		{"devnet", "", "https://api.devnet.solana.com"},
		{" Testnet ", "", "https://api.testnet.solana.com"},
		{"mainnet-beta", "", "https://api.mainnet-beta.solana.com"},
		{"mainnet", "", "https://api.mainnet-beta.solana.com"},
		{"devnet", "http://127.0.0.1:8899", "http://127.0.0.1:8899"},
		{"https://rpc.example.com", "", "https://rpc.example.com"},
		{"https://mainnet.helius-rpc.com/?api-key=AbCdEf", "", "https://mainnet.helius-rpc.com/?api-key=AbCdEf"},
		{" HTTPS://RPC.Example.com/Token ", "", "HTTPS://RPC.Example.com/Token"},
	}
	for _, tc := range cases {
		got, err := Endpoint(tc.cluster, tc.url)
		if err != nil {
			t.Fatalf("Endpoint(%q, %q) error: %v", tc.cluster, tc.url, err)
		}
		if got != tc.want {
			t.Fatalf("Endpoint(%q, %q) = %s, want %s", tc.cluster, tc.url, got, tc.want)
		}
	}
}

func TestEndpointUnknownCluster(t *testing.T) {
	if _, err := Endpoint("moonnet", ""); err == nil {
		t.Fatalf("expected error for unknown cluster")
	}
}
