// Command example wires the wallet, derivationpath, and tron packages
// together: derive a TRON account key from a raw seed and print its
// extended keys and address.
package main

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/not-for-prod/walletcore/cointype"
	"github.com/not-for-prod/walletcore/derivationpath"
	"github.com/not-for-prod/walletcore/tron"
	"github.com/not-for-prod/walletcore/wallet"
)

func main() {
	seed := make([]byte, wallet.SeedLen)
	if _, err := rand.Read(seed); err != nil {
		log.Fatal(err)
	}

	w, err := wallet.NewHDWallet(seed)
	if err != nil {
		log.Fatal(err)
	}

	const account = 0
	xprv, err := w.ExtendedPrivateAccount(cointype.Tron, account)
	if err != nil {
		log.Fatal(err)
	}
	xpub, err := w.ExtendedPublicAccount(cointype.Tron, account)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Extended private account key: %s\n", xprv)
	fmt.Printf("Extended public account key:  %s\n", xpub)

	path := derivationpath.NewBIP44(derivationpath.Purpose, cointype.Tron, account, 0, 0)
	privKey, err := w.KeyAt(path)
	if err != nil {
		log.Fatal(err)
	}
	pubKey, err := privKey.PublicKey()
	if err != nil {
		log.Fatal(err)
	}

	addr, err := tron.FromPublicKey(pubKey)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Derivation path: %s\n", path)
	fmt.Printf("Private key: %x\n", privKey.Bytes())
	fmt.Printf("TRON address: %s\n", addr)
}
