package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/openhpke/hpke-backend-go/pkg/hpkecrypto"
)

func main() {
	log.Printf("hpke-backend-go version: %s", hpkecrypto.LibraryVersion())

	provider, err := hpkecrypto.New(hpkecrypto.Config{})
	if err != nil {
		log.Fatalf("construct provider: %v", err)
	}

	fmt.Printf("provider: %s\n", provider.Name())

	kems := provider.KEMs()
	sort.Slice(kems, func(i, j int) bool { return kems[i] < kems[j] })
	fmt.Println("KEMs:")
	for _, id := range kems {
		fmt.Printf("  0x%04x  %s\n", uint16(id), id)
	}

	kdfs := provider.KDFs()
	sort.Slice(kdfs, func(i, j int) bool { return kdfs[i] < kdfs[j] })
	fmt.Println("KDFs:")
	for _, id := range kdfs {
		fmt.Printf("  0x%04x  %s\n", uint16(id), id)
	}

	aeads := provider.AEADs()
	sort.Slice(aeads, func(i, j int) bool { return aeads[i] < aeads[j] })
	fmt.Println("AEADs:")
	for _, id := range aeads {
		fmt.Printf("  0x%04x  %s\n", uint16(id), id)
	}
}
