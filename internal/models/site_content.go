package models

// SiteContent — редактируемый блок публичной страницы (hero, for_whom, mentors...).
// На одну секцию приходится ровно одна запись, section — естественный ключ апсерта.
type SiteContent struct {
	ID       int    `json:"id"`
	Section  string `json:"section"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}
