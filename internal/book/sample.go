package book

// SampleRecords are shown in the featured carousel when the catalog cannot
// be reached.
func SampleRecords() []Record {
	return []Record{
		{
			ID: "sample1",
			VolumeInfo: VolumeInfo{
				Title:         "El Señor de los Anillos",
				Authors:       []string{"J.R.R. Tolkien"},
				ImageLinks:    &ImageLinks{Thumbnail: PlaceholderCover},
				AverageRating: 4.5,
			},
		},
		{
			ID: "sample2",
			VolumeInfo: VolumeInfo{
				Title:         "Harry Potter y la Piedra Filosofal",
				Authors:       []string{"J.K. Rowling"},
				ImageLinks:    &ImageLinks{Thumbnail: PlaceholderCover},
				AverageRating: 4.8,
			},
		},
		{
			ID: "sample3",
			VolumeInfo: VolumeInfo{
				Title:         "1984",
				Authors:       []string{"George Orwell"},
				ImageLinks:    &ImageLinks{Thumbnail: PlaceholderCover},
				AverageRating: 4.3,
			},
		},
	}
}
