/*
Package secrets reads secret values from files mounted into the container.

The gateway uses it for the API key when API_GATEWAY_API_KEY_FILE is set:

	provider, err := secrets.NewFileProvider("/var/run/secrets/gateway", true)
	if err != nil {
		return err
	}
	defer provider.Close()

	key, err := provider.GetSecret(ctx, "api-key")

With watching enabled, writes, creates, renames and removals in the directory
drop the cache. Kubernetes updates mounted Secrets by swapping a symlink, which
shows up as a create event, so rotated keys take effect without a restart.
*/
package secrets
