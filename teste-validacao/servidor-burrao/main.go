package main

import (
	"fmt"
	"net/http"
)

func main() {
	http.HandleFunc("/app/status", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Ok")
		fmt.Println("Log: Alguém acessou o endpoint /app/status")
	})
	http.HandleFunc("/create/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "Not Ok")
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, "User Created")
		fmt.Println("Log: Usuário criado via /create/user")
	})
	fmt.Println("Servidor rodando em http://localhost:8081")
	err := http.ListenAndServe(":8081", nil)
	if err != nil {
		fmt.Printf("Erro ao subir o servidor: %s\n", err)
	}
}
