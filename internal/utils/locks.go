package utils

import "sync"

// userLocks sérialise les écritures panier d'un même utilisateur dans ce
// process : sans ça, deux premières requêtes simultanées peuvent créer deux
// paniers pour le même user_id (PostgREST n'offre pas de transaction).
// La contrainte d'unicité côté Supabase reste le filet de sécurité.
var userLocks sync.Map

// LockUser prend le verrou du user donné et renvoie la fonction de libération
func LockUser(userID string) func() {
	value, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
