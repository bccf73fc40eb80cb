// Генерирует bcrypt-хеш для ADMIN_PASSWORD_HASH:
//
//	go run ./cmd/hashpass 'пароль'
package main

import (
	"fmt"
	"log"
	"os"

	"equipment-system/pkg/utils"
)

func main() {
	if len(os.Args) != 2 || os.Args[1] == "" {
		log.Fatalf("использование: %s <пароль>", os.Args[0])
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("Ошибка при генерации хеша: %v", err)
	}

	fmt.Println(hash)
}
