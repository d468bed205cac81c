package forms

import "github.com/agnesederberg/Final-project-2/internal/repository"

func NewFolderForm(v Values, categories repository.CategoryRepository) *Form {
	f := New("folder")
	f.Field("name", v["name"], Required(), Length(1, 128))
	f.Field("category_id", v["category_id"], Required(), CategoryExists(categories))
	return f
}

func NewNoteForm(v Values) *Form {
	f := New("note")
	f.Field("data", v["data"], Required(), Length(1, 1000))
	return f
}
