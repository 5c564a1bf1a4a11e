// Provisiona um usuário do sistema. Não existe rota de cadastro: usuários são
// criados por esta ferramenta, com a senha armazenada como hash bcrypt.
//
// Uso:
//
//	go run ./cmd/seed -email admin@saep.com -password admin123 -name Administrador
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"autopecas-web/internal/application/auth"
	"autopecas-web/internal/domain/entity"
	"autopecas-web/internal/infrastructure/postgres"
	"autopecas-web/pkg/config"
)

func main() {
	email := flag.String("email", "", "email do usuário (obrigatório)")
	password := flag.String("password", "", "senha em claro; será armazenada como hash bcrypt (obrigatório)")
	name := flag.String("name", "", "nome completo (obrigatório)")
	flag.Parse()

	if *email == "" || *password == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fail("carregar configuração: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexão ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fail("criação do esquema: %v", err)
	}

	hash, err := auth.BcryptVerifier{}.Hash(*password)
	if err != nil {
		fail("hash da senha: %v", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        *email,
		PasswordHash: hash,
		FullName:     *name,
		CreatedAt:    time.Now(),
	}
	if err := postgres.NewUserRepository(pool).Create(user); err != nil {
		fail("criar usuário: %v", err)
	}

	fmt.Printf("usuário %s criado (id %s)\n", user.Email, user.ID)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
