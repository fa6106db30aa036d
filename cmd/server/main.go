package main

import "nsuemschool/internal/app"

// @title           NSUEM School API
// @version         1.0
// @description     Бэкенд сайта школы программирования НГУЭУ: лендинг, личный кабинет, админка.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
